package tadax

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ptiger10/tada"
)

// MapFromDict converts m into a "map column": a Series whose label level
// (named "key") holds the map keys and whose values (named "value") hold the
// map values. Keys are sorted so that the output is deterministic.
// Looking up any original key in the result reproduces its original value
// (e.g., via s.FilterByValue()).
// Returns an error if m is empty.
func MapFromDict(m map[string]int) (*tada.Series, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("MapFromDict(): `m` cannot be empty")
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]int, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	ret := tada.NewSeries(vals, keys).SetName("value").SetLabelNames([]string{"key"})
	if ret.Err() != nil {
		return nil, fmt.Errorf("MapFromDict(): %v", ret.Err())
	}
	return ret, nil
}

// Lower coerces the Series values to string and lowercases them.
// Null rows stay null.
// Returns a new Series with the same name and labels as s.
func Lower(s *tada.Series) *tada.Series {
	return applyString(s, strings.ToLower)
}

// Upper coerces the Series values to string and uppercases them.
// Null rows stay null.
// Returns a new Series with the same name and labels as s.
func Upper(s *tada.Series) *tada.Series {
	return applyString(s, strings.ToUpper)
}

// applyString rebuilds s as a string Series with fn applied to every non-null
// row. Null rows become "", which tada treats as null.
func applyString(s *tada.Series, fn func(string) string) *tada.Series {
	if s.Err() != nil {
		return s
	}
	vals := s.GetValuesString()
	nulls := s.GetNulls()
	ret := make([]string, len(vals))
	for i := range vals {
		if nulls[i] {
			continue
		}
		ret[i] = fn(vals[i])
	}
	return tada.NewSeries(ret, s.GetLabels()...).
		SetLabelNames(s.ListLabelNames()).
		SetName(s.Name())
}

// HasAnyPrefix coerces the Series values to string and evaluates whether each
// row starts with any of prefixes (case-insensitive).
// Null rows and rows matching no prefix evaluate false; an empty prefixes
// slice evaluates false for every row.
// Returns a new bool Series named "prefix_match" sharing the original labels.
func HasAnyPrefix(s *tada.Series, prefixes []string) *tada.Series {
	if s.Err() != nil {
		return s
	}
	return matchAny(s, prefixes, strings.HasPrefix).SetName("prefix_match")
}

// HasAnySuffix coerces the Series values to string and evaluates whether each
// row ends with any of suffixes (case-insensitive).
// Null rows and rows matching no suffix evaluate false; an empty suffixes
// slice evaluates false for every row.
// Returns a new bool Series named "suffix_match" sharing the original labels.
func HasAnySuffix(s *tada.Series, suffixes []string) *tada.Series {
	if s.Err() != nil {
		return s
	}
	return matchAny(s, suffixes, strings.HasSuffix).SetName("suffix_match")
}

func matchAny(s *tada.Series, candidates []string, match func(string, string) bool) *tada.Series {
	lowered := make([]string, len(candidates))
	for i := range candidates {
		lowered[i] = strings.ToLower(candidates[i])
	}
	vals := s.GetValuesString()
	nulls := s.GetNulls()
	ret := make([]bool, len(vals))
	for i := range vals {
		if nulls[i] {
			continue
		}
		v := strings.ToLower(vals[i])
		for _, candidate := range lowered {
			if match(v, candidate) {
				ret[i] = true
				break
			}
		}
	}
	return tada.NewSeries(ret, s.GetLabels()...).SetLabelNames(s.ListLabelNames())
}

// Redact coerces the Series values to string and masks every character except
// the last keepRight with "*". Values with keepRight or fewer characters are
// masked entirely, and null rows stay null.
// Returns a new Series with the same name and labels as s.
func Redact(s *tada.Series, keepRight int) *tada.Series {
	if keepRight < 0 {
		keepRight = 0
	}
	return applyString(s, func(val string) string {
		runes := []rune(val)
		if len(runes) <= keepRight {
			return strings.Repeat("*", len(runes))
		}
		return strings.Repeat("*", len(runes)-keepRight) + string(runes[len(runes)-keepRight:])
	})
}
