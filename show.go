package tadax

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/ptiger10/tada"
)

type showConfig struct {
	maxRows       int
	includeLabels bool
}

// A ShowOption configures Show.
type ShowOption func(*showConfig)

// ShowOptionMaxRows limits Show to the first n rows (default 20).
func ShowOptionMaxRows(n int) ShowOption {
	return func(s *showConfig) {
		s.maxRows = n
	}
}

// ShowOptionLabels includes the row labels in the rendered table
// (default excluded).
func ShowOptionLabels() ShowOption {
	return func(s *showConfig) {
		s.includeLabels = true
	}
}

// Show renders df to w as an ASCII table: a header row of column names, then
// one line per row of values. At most 20 rows are rendered unless overridden
// with ShowOptionMaxRows; truncation is noted below the table.
// Returns an error if df carries an error.
func Show(w io.Writer, df *tada.DataFrame, options ...ShowOption) error {
	if df.Err() != nil {
		return fmt.Errorf("Show(): %v", df.Err())
	}
	config := showConfig{maxRows: 20}
	for _, option := range options {
		option(&config)
	}
	view := df
	truncated := 0
	if df.Len() > config.maxRows {
		truncated = df.Len() - config.maxRows
		view = df.Head(config.maxRows)
	}
	var writeOptions []tada.WriteOption
	if !config.includeLabels {
		writeOptions = append(writeOptions, tada.WriteOptionExcludeLabels())
	}
	records := view.ToCSV(writeOptions...)
	if len(records) == 0 {
		return fmt.Errorf("Show(): DataFrame has no columns")
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(records[0])
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(records[1:])
	table.Render()
	if truncated > 0 {
		fmt.Fprintf(w, "... and %d more rows\n", truncated)
	}
	return nil
}
