package tadax

import (
	"fmt"

	"github.com/ptiger10/tada"
)

// JoinOnColumn joins dfs on the column named columnName, folding a pairwise
// full outer join from left to right over the supplied order.
// Rows are aligned on their stringified values in columnName, and match
// multiplicity is preserved: a left row with k matching right rows appears k
// times in the result. Keys present in only one side appear once, with null
// values in the columns of the other side. Rows whose key is null match
// nothing.
//
// Returns an error if no DataFrame is supplied, if columnName is not a column
// in every DataFrame, or if any input carries an error.
//
// Column names on the right side of a pairwise join that collide with names
// already in the accumulated result are suffixed with _n prior to joining
// (the same convention as tada's DeduplicateNames).
// Because unmatched rows are filled with null placeholders, any column
// receiving placeholders is coerced to string, per tada's Append semantics.
// Row labels are reset to a default label level ([]int incrementing from 0).
func JoinOnColumn(columnName string, dfs ...*tada.DataFrame) (*tada.DataFrame, error) {
	if len(dfs) == 0 {
		return nil, fmt.Errorf("JoinOnColumn(): at least one DataFrame must be supplied")
	}
	for i, df := range dfs {
		if df.Err() != nil {
			return nil, fmt.Errorf("JoinOnColumn(): position %d: %v", i, df.Err())
		}
		if err := df.HasCols(columnName); err != nil {
			return nil, fmt.Errorf("JoinOnColumn(): position %d: %v", i, err)
		}
	}
	ret := dfs[0].Relabel()
	for i := 1; i < len(dfs); i++ {
		var err error
		ret, err = outerJoin(ret, dfs[i], columnName)
		if err != nil {
			return nil, fmt.Errorf("JoinOnColumn(): position %d: %v", i, err)
		}
	}
	return ret, nil
}

// Union stacks the rows of dfs on top of one another, folding a pairwise
// append from left to right over the supplied order.
// Schema compatibility is not validated: a mismatch in the number of columns
// surfaces as tada's own error on the returned DataFrame, and a type mismatch
// within a column coerces that column to string, per tada's Append semantics.
// Row labels are reset to a default label level ([]int incrementing from 0).
//
// Returns an error if no DataFrame is supplied or if any input carries an
// error.
func Union(dfs ...*tada.DataFrame) (*tada.DataFrame, error) {
	if len(dfs) == 0 {
		return nil, fmt.Errorf("Union(): at least one DataFrame must be supplied")
	}
	for i, df := range dfs {
		if df.Err() != nil {
			return nil, fmt.Errorf("Union(): position %d: %v", i, df.Err())
		}
	}
	ret := dfs[0].Relabel()
	for i := 1; i < len(dfs); i++ {
		ret = ret.Append(dfs[i].Relabel())
		if ret.Err() != nil {
			return ret, nil
		}
	}
	return ret.Relabel(), nil
}

// outerJoin composes a pairwise full outer join from tada's subset and append
// primitives: every left row is paired with each of its key matches on the
// right (an unmatched left row pairs with a single all-null right row), then
// right rows whose key never appears on the left are appended with null
// placeholders in left's columns.
func outerJoin(left *tada.DataFrame, right *tada.DataFrame, key string) (*tada.DataFrame, error) {
	right = disambiguate(left, right.Copy(), key).Relabel()

	leftKeys := left.Col(key).GetValuesString()
	leftKeyNulls := left.Col(key).GetNulls()
	rightKeys := right.Col(key).GetValuesString()
	rightKeyNulls := right.Col(key).GetNulls()
	rightRowsByKey := make(map[string][]int)
	for j := range rightKeys {
		if rightKeyNulls[j] {
			continue
		}
		rightRowsByKey[rightKeys[j]] = append(rightRowsByKey[rightKeys[j]], j)
	}

	// pair row positions across the two sides, preserving match multiplicity
	var leftIdx, rightIdx []int
	nullRowIdx := right.Len()
	needNullRow := false
	for i := range leftKeys {
		matches := rightRowsByKey[leftKeys[i]]
		if leftKeyNulls[i] {
			matches = nil
		}
		if len(matches) == 0 {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, nullRowIdx)
			needNullRow = true
			continue
		}
		for _, j := range matches {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, j)
		}
	}

	rightExt := right
	if needNullRow {
		rightExt = right.Copy().Append(nullRow(right.ListColNames()))
		if rightExt.Err() != nil {
			return nil, rightExt.Err()
		}
	}
	leftPart := left.Subset(leftIdx).Relabel()
	if leftPart.Err() != nil {
		return nil, leftPart.Err()
	}
	rightPart := rightExt.Subset(rightIdx).Relabel()
	if rightPart.Err() != nil {
		return nil, rightPart.Err()
	}
	columns := make([]*tada.Series, 0, len(leftPart.ListColNames())+len(rightPart.ListColNames()))
	for _, name := range leftPart.ListColNames() {
		columns = append(columns, leftPart.Col(name))
	}
	for _, name := range rightPart.ListColNames() {
		if name == key {
			continue
		}
		columns = append(columns, rightPart.Col(name))
	}
	joined, err := tada.ConcatSeries(columns...)
	if err != nil {
		return nil, err
	}
	joined = joined.Relabel()

	// isolate right rows whose key does not appear in left
	seen := make(map[string]bool)
	for _, v := range leftKeys {
		seen[v] = true
	}
	unmatched := right.Filter(map[string]tada.FilterFn{
		key: {String: func(val string) bool { return !seen[val] }},
	})
	if unmatched.Err() != nil {
		return nil, unmatched.Err()
	}
	if unmatched.Len() == 0 {
		return joined, nil
	}

	// stitch the unmatched rows into joined's column order,
	// with null placeholders in columns right does not have
	colNames := joined.ListColNames()
	slices := make([]interface{}, len(colNames))
	for k, name := range colNames {
		if right.HasCols(name) == nil {
			slices[k] = unmatched.Col(name).GetValues()
		} else {
			slices[k] = make([]string, unmatched.Len())
		}
	}
	appendage := tada.NewDataFrame(slices).SetColNames(colNames)
	if appendage.Err() != nil {
		return nil, appendage.Err()
	}
	ret := joined.Append(appendage)
	if ret.Err() != nil {
		return nil, ret.Err()
	}
	return ret.Relabel(), nil
}

// nullRow builds a one-row DataFrame of null ("") values under colNames.
func nullRow(colNames []string) *tada.DataFrame {
	slices := make([]interface{}, len(colNames))
	for k := range colNames {
		slices[k] = []string{""}
	}
	return tada.NewDataFrame(slices).SetColNames(colNames)
}

// disambiguate renames right's non-key columns that collide with a column
// name in left by appending _n, where n is the lowest integer that produces
// an unused name.
func disambiguate(left *tada.DataFrame, right *tada.DataFrame, key string) *tada.DataFrame {
	taken := make(map[string]bool)
	for _, name := range left.ListColNames() {
		taken[name] = true
	}
	for _, name := range right.ListColNames() {
		if name == key || !taken[name] {
			taken[name] = true
			continue
		}
		n := 1
		newName := fmt.Sprintf("%v_%d", name, n)
		for taken[newName] {
			n++
			newName = fmt.Sprintf("%v_%d", name, n)
		}
		right = right.WithCol(name, newName)
		taken[newName] = true
	}
	return right
}
