package discretize_test

import (
	"context"
	"fmt"

	"github.com/YuminosukeSato/mdlp/discretize"
)

func ExampleDiscretize() {
	values := []float64{1, 2, 3, 4, 5}
	labels := []string{"A", "A", "A", "B", "B"}

	cat, err := discretize.Discretize(context.Background(), values, labels)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, iv := range cat.Intervals() {
		fmt.Println(iv.Label)
	}
	_, label, _ := cat.Categorize(4.2)
	fmt.Println(label)
	// Output:
	// ]-Inf, 3.5]
	// ]3.5, Inf[
	// ]3.5, Inf[
}

func ExampleParseInterval() {
	iv, err := discretize.ParseInterval("]3.5, 47.0]")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(iv.Contains(3.5), iv.Contains(47))
	// Output: false true
}
