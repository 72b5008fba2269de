package tadax

import (
	"fmt"
	"sort"

	"github.com/ptiger10/tada"
)

// FromDict converts data into a two-column DataFrame.
// The first column (named keyName) holds the map keys and the second column
// (named valueName) holds the map values. Keys are sorted so that the output
// is deterministic.
//
// If explode is false, the DataFrame has one row per key and the value column
// holds the original []int slices (as an []interface{} container). If explode
// is true, the DataFrame has one row per (key, element) pair; a key mapped to
// an empty slice contributes no rows.
// A default label level is inserted ([]int incrementing from 0).
// Returns an error if data is empty, or if exploding yields zero rows.
func FromDict(data map[string][]int, keyName string, valueName string, explode bool) (*tada.DataFrame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("FromDict(): `data` cannot be empty")
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var ret *tada.DataFrame
	if !explode {
		vals := make([]interface{}, len(keys))
		for i, k := range keys {
			vals[i] = data[k]
		}
		ret = tada.NewDataFrame([]interface{}{keys, vals})
	} else {
		var retKeys []string
		var retVals []int
		for _, k := range keys {
			for _, v := range data[k] {
				retKeys = append(retKeys, k)
				retVals = append(retVals, v)
			}
		}
		if len(retKeys) == 0 {
			return nil, fmt.Errorf("FromDict(): `data` contains no values to explode")
		}
		ret = tada.NewDataFrame([]interface{}{retKeys, retVals})
	}
	ret = ret.SetColNames([]string{keyName, valueName})
	if ret.Err() != nil {
		return nil, fmt.Errorf("FromDict(): %v", ret.Err())
	}
	return ret, nil
}
