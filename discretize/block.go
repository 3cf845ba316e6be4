package discretize

import (
	"cmp"
	"slices"
)

// Block is a maximal run of samples sharing one value.
type Block struct {
	Value float64
	Count int
	// ClassCounts[c] is the number of samples of class c in the block.
	ClassCounts []int
}

// AggregateBlocks sorts the samples by value and merges equal values into
// blocks, strictly increasing in Value. classes must hold codes in
// [0, nClasses) and have the same length as values; values must be
// finite. Fit checks both before calling it.
func AggregateBlocks(values []float64, classes []int, nClasses int) []Block {
	if len(values) == 0 {
		return nil
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	blocks := make([]Block, 0, len(values))
	for _, idx := range order {
		v := values[idx]
		if n := len(blocks); n == 0 || blocks[n-1].Value != v {
			blocks = append(blocks, Block{Value: v, ClassCounts: make([]int, nClasses)})
		}
		b := &blocks[len(blocks)-1]
		b.Count++
		b.ClassCounts[classes[idx]]++
	}
	return slices.Clip(blocks)
}
