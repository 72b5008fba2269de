package tadax

import (
	"reflect"
	"strings"
	"testing"

	"github.com/d4l3k/messagediff"
	"github.com/ptiger10/tada"
)

func TestLatestRecordPerKey(t *testing.T) {
	df := tada.NewDataFrame([]interface{}{
		[]int{1, 1, 1, 2, 2, 2},
		[]int{1, 2, 3, 2, 3, 4},
		[]string{"p", "q", "r", "s", "t", "u"}}).
		SetColNames([]string{"key", "version", "note"})

	got, err := LatestRecordPerKey(df, "key", "version")
	if err != nil {
		t.Fatalf("LatestRecordPerKey() error = %v", err)
	}
	want := `*0,key,version,note
0,1,3,r
1,2,4,u`
	eq, diffs, err := got.EqualsCSV(true, strings.NewReader(want))
	if err != nil {
		t.Fatalf("EqualsCSV() error = %v", err)
	}
	if !eq {
		t.Errorf("LatestRecordPerKey() has diffs: %v", diffs)
	}
}

func TestLatestRecordPerKey_ties(t *testing.T) {
	df := tada.NewDataFrame([]interface{}{
		[]int{1, 1, 2},
		[]int{5, 5, 7},
		[]string{"p", "q", "s"}}).
		SetColNames([]string{"key", "version", "note"})

	got, err := LatestRecordPerKey(df, "key", "version")
	if err != nil {
		t.Fatalf("LatestRecordPerKey() error = %v", err)
	}
	// the sort is stable, so a tie resolves to the later original row
	want := `*0,key,version,note
0,1,5,q
1,2,7,s`
	eq, diffs, err := got.EqualsCSV(true, strings.NewReader(want))
	if err != nil {
		t.Fatalf("EqualsCSV() error = %v", err)
	}
	if !eq {
		t.Errorf("LatestRecordPerKey() has diffs: %v", diffs)
	}
}

func TestLatestRecordPerKey_doesNotMutateInput(t *testing.T) {
	df := tada.NewDataFrame([]interface{}{
		[]int{2, 1},
		[]int{1, 2}}).
		SetColNames([]string{"key", "version"})
	want := df.Copy()

	if _, err := LatestRecordPerKey(df, "key", "version"); err != nil {
		t.Fatalf("LatestRecordPerKey() error = %v", err)
	}
	if !reflect.DeepEqual(df, want) {
		t.Errorf("LatestRecordPerKey() mutated its input")
		t.Errorf(messagediff.PrettyDiff(df, want))
	}
}

func TestLatestRecordPerKey_errors(t *testing.T) {
	df := tada.NewDataFrame([]interface{}{
		[]int{1},
		[]int{1}}).
		SetColNames([]string{"key", "version"})
	if _, err := LatestRecordPerKey(df, "corge", "version"); err == nil {
		t.Errorf("LatestRecordPerKey() error = nil, want error on missing key column")
	}
	if _, err := LatestRecordPerKey(df, "key", "corge"); err == nil {
		t.Errorf("LatestRecordPerKey() error = nil, want error on missing order column")
	}
}
