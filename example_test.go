package tadax

import (
	"fmt"

	"github.com/ptiger10/tada"
)

func ExampleMapFromDict() {
	s, _ := MapFromDict(map[string]int{"key1": 1, "key2": 2})
	fmt.Println(s.FilterByValue(map[string]interface{}{"key": "key2"}).GetValuesFloat64())
	// Output:
	// [2]
}

func ExampleFromDict() {
	df, _ := FromDict(map[string][]int{"key1": {1, 2}, "key2": {3}}, "keys", "values", true)
	fmt.Println(df.ToCSV(tada.WriteOptionExcludeLabels()))
	// Output:
	// [[keys values] [key1 1] [key1 2] [key2 3]]
}

func ExampleUnion() {
	df1 := tada.NewDataFrame([]interface{}{[]string{"a"}, []int{1}}).SetColNames([]string{"k", "v"})
	df2 := tada.NewDataFrame([]interface{}{[]string{"b"}, []int{2}}).SetColNames([]string{"k", "v"})
	u, _ := Union(df1, df2)
	fmt.Println(u.ToCSV(tada.WriteOptionExcludeLabels()))
	// Output:
	// [[k v] [a 1] [b 2]]
}

func ExamplePipe() {
	s := tada.NewSeries([]string{"GopherMail"})
	fmt.Println(Pipe(s, Lower).GetValuesString())
	// Output:
	// [gophermail]
}
