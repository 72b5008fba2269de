package tadax

import (
	"fmt"

	"github.com/ptiger10/tada"
)

// LatestRecordPerKey reduces df to one row per distinct value in keyColumn:
// the row with the greatest value in orderColumn (coerced to float64).
// Ties within a key resolve to the row appearing last in the original order.
// Other columns are retained, and the result's column order is keyColumn
// followed by the remaining columns in their original order.
// Row labels are reset to a default label level ([]int incrementing from 0).
//
// Returns an error if keyColumn or orderColumn is not a column in df, or if
// df carries an error.
func LatestRecordPerKey(df *tada.DataFrame, keyColumn string, orderColumn string) (*tada.DataFrame, error) {
	if df.Err() != nil {
		return nil, fmt.Errorf("LatestRecordPerKey(): %v", df.Err())
	}
	if err := df.HasCols(keyColumn, orderColumn); err != nil {
		return nil, fmt.Errorf("LatestRecordPerKey(): %v", err)
	}
	valueCols := make([]string, 0, len(df.ListColNames()))
	for _, name := range df.ListColNames() {
		if name != keyColumn {
			valueCols = append(valueCols, name)
		}
	}

	df = df.Copy()
	sorted := df.Sort(tada.Sorter{Name: orderColumn, DType: tada.Float64})
	if sorted.Err() != nil {
		return nil, fmt.Errorf("LatestRecordPerKey(): %v", sorted.Err())
	}
	last := sorted.GroupBy(keyColumn).Last()
	if last.Err() != nil {
		return nil, fmt.Errorf("LatestRecordPerKey(): %v", last.Err())
	}
	// the group keys double as both a label level and a retained column;
	// Relabel drops the label level and Cols restores the column order
	ret := last.Relabel().Cols(append([]string{keyColumn}, valueCols...)...)
	if ret.Err() != nil {
		return nil, fmt.Errorf("LatestRecordPerKey(): %v", ret.Err())
	}
	return ret, nil
}
