package tadax

import (
	"github.com/ptiger10/tada"
)

// Pipe applies fns to s from left to right and returns the final Series.
// It exists so that free functions taking a Series can be chained in reading
// order, the way tada's own methods chain.
// With no fns, Pipe returns s unchanged.
func Pipe(s *tada.Series, fns ...func(*tada.Series) *tada.Series) *tada.Series {
	for _, fn := range fns {
		s = fn(s)
	}
	return s
}

// PipeFrame applies fns to df from left to right and returns the final
// DataFrame.
// With no fns, PipeFrame returns df unchanged.
func PipeFrame(df *tada.DataFrame, fns ...func(*tada.DataFrame) *tada.DataFrame) *tada.DataFrame {
	for _, fn := range fns {
		df = fn(df)
	}
	return df
}
