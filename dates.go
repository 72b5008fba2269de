package tadax

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ptiger10/tada"
)

// ParseDates coerces the Series values to string and parses each row into a
// time.Time, inferring the layout row by row with dateparse.
// Null rows and rows that cannot be parsed become null (zero time.Time).
// Returns a new Series with the same name and labels as s.
func ParseDates(s *tada.Series) (*tada.Series, error) {
	if s.Err() != nil {
		return nil, fmt.Errorf("ParseDates(): %v", s.Err())
	}
	vals := s.GetValuesString()
	nulls := s.GetNulls()
	ret := make([]time.Time, len(vals))
	for i := range vals {
		if nulls[i] {
			continue
		}
		if t, err := dateparse.ParseAny(vals[i]); err == nil {
			ret[i] = t
		}
	}
	return tada.NewSeries(ret, s.GetLabels()...).
		SetLabelNames(s.ListLabelNames()).
		SetName(s.Name()), nil
}
