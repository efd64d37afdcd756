package set_test

import (
	"fmt"

	"github.com/denismitr/macroland/set"
)

func ExampleSortedOf() {
	s := set.SortedOf(3, 1, 2, 1)

	for _, item := range s.Items() {
		fmt.Println(item)
	}

	// Output:
	// 1
	// 2
	// 3
}
