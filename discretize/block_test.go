package discretize

import (
	"reflect"
	"testing"
)

func TestAggregateBlocks(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		classes  []int
		nClasses int
		want     []Block
	}{
		{
			name:     "empty",
			values:   nil,
			classes:  nil,
			nClasses: 1,
			want:     nil,
		},
		{
			name:     "distinct values become distinct blocks",
			values:   []float64{3, 1, 2},
			classes:  []int{1, 0, 0},
			nClasses: 2,
			want: []Block{
				{Value: 1, Count: 1, ClassCounts: []int{1, 0}},
				{Value: 2, Count: 1, ClassCounts: []int{1, 0}},
				{Value: 3, Count: 1, ClassCounts: []int{0, 1}},
			},
		},
		{
			name:     "equal values merge",
			values:   []float64{1, 1, 1, 1},
			classes:  []int{0, 1, 0, 1},
			nClasses: 2,
			want: []Block{
				{Value: 1, Count: 4, ClassCounts: []int{2, 2}},
			},
		},
		{
			name:     "negative zero equals zero",
			values:   []float64{0, -2.5, negZero(), 7},
			classes:  []int{0, 2, 1, 2},
			nClasses: 3,
			want: []Block{
				{Value: -2.5, Count: 1, ClassCounts: []int{0, 0, 1}},
				{Value: 0, Count: 2, ClassCounts: []int{1, 1, 0}},
				{Value: 7, Count: 1, ClassCounts: []int{0, 0, 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBlocks(tt.values, tt.classes, tt.nClasses)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AggregateBlocks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateBlocksInvariants(t *testing.T) {
	values, classes := noisyThresholds(500, 7)
	blocks := AggregateBlocks(values, classes, 3)

	total := 0
	for i, b := range blocks {
		if i > 0 && !(blocks[i-1].Value < b.Value) {
			t.Fatalf("block %d value %v not above %v", i, b.Value, blocks[i-1].Value)
		}
		sum := 0
		for _, c := range b.ClassCounts {
			sum += c
		}
		if sum != b.Count {
			t.Errorf("block %d class counts sum to %d, want %d", i, sum, b.Count)
		}
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("blocks hold %d samples, want %d", total, len(values))
	}
}

func negZero() float64 {
	var z float64
	return -z
}
