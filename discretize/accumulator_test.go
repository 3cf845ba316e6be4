package discretize

import (
	"math"
	"testing"
)

func blocksOf(classCounts ...[]int) []Block {
	blocks := make([]Block, len(classCounts))
	for i, cc := range classCounts {
		n := 0
		for _, c := range cc {
			n += c
		}
		blocks[i] = Block{Value: float64(i + 1), Count: n, ClassCounts: cc}
	}
	return blocks
}

func TestAccumulatorStats(t *testing.T) {
	acc := NewAccumulator(blocksOf(
		[]int{2, 0},
		[]int{0, 2},
		[]int{1, 3},
		[]int{0, 1},
	), 2)

	tests := []struct {
		name    string
		r       Range
		count   int
		classes int
		entropy float64
	}{
		{"pure single block", Range{0, 0}, 2, 1, 0},
		{"balanced", Range{0, 1}, 4, 2, 1},
		{"skewed block", Range{2, 2}, 4, 2, -(0.25*math.Log2(0.25) + 0.75*math.Log2(0.75))},
		{"pure pair", Range{1, 1}, 2, 1, 0},
		{"everything", Range{0, 3}, 9, 2, -(3.0/9*math.Log2(3.0/9) + 6.0/9*math.Log2(6.0/9))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := acc.Stats(tt.r)
			if got.Count != tt.count || got.Classes != tt.classes {
				t.Errorf("Stats(%v) = %+v, want count %d classes %d", tt.r, got, tt.count, tt.classes)
			}
			if math.Abs(got.Entropy-tt.entropy) > 1e-12 {
				t.Errorf("Stats(%v).Entropy = %v, want %v", tt.r, got.Entropy, tt.entropy)
			}
			if got.Entropy < 0 || math.IsNaN(got.Entropy) || math.IsInf(got.Entropy, 0) {
				t.Errorf("entropy must be finite and non-negative, got %v", got.Entropy)
			}
		})
	}

	if got := acc.ClassCounts(Range{1, 3}); got[0] != 1 || got[1] != 6 {
		t.Errorf("ClassCounts([1,3]) = %v, want [1 6]", got)
	}
}

func TestBestSplit(t *testing.T) {
	t.Run("single block has no candidate", func(t *testing.T) {
		acc := NewAccumulator(blocksOf([]int{2, 2}), 2)
		if _, ok := acc.BestSplit(Range{0, 0}); ok {
			t.Error("expected no candidate for a single block")
		}
	})

	t.Run("clean boundary", func(t *testing.T) {
		acc := NewAccumulator(blocksOf([]int{1, 0}, []int{1, 0}, []int{1, 0}, []int{0, 1}, []int{0, 1}), 2)
		s, ok := acc.BestSplit(Range{0, 4})
		if !ok {
			t.Fatal("expected a candidate")
		}
		if s.Cut != 2 || s.Entropy != 0 {
			t.Errorf("BestSplit = cut %d entropy %v, want cut 2 entropy 0", s.Cut, s.Entropy)
		}
		if s.Left != (Range{0, 2}) || s.Right != (Range{3, 4}) {
			t.Errorf("sides = %v %v", s.Left, s.Right)
		}
	})

	t.Run("ties keep the lowest cut", func(t *testing.T) {
		acc := NewAccumulator(blocksOf([]int{1, 0}, []int{0, 1}, []int{1, 0}), 2)
		s, ok := acc.BestSplit(Range{0, 2})
		if !ok {
			t.Fatal("expected a candidate")
		}
		if s.Cut != 0 {
			t.Errorf("Cut = %d, want 0", s.Cut)
		}
	})

	t.Run("sub range", func(t *testing.T) {
		acc := NewAccumulator(blocksOf([]int{0, 1}, []int{1, 0}, []int{1, 0}, []int{0, 1}), 2)
		s, ok := acc.BestSplit(Range{1, 3})
		if !ok || s.Cut != 2 {
			t.Errorf("BestSplit([1,3]) = %+v, %v; want cut 2", s, ok)
		}
	})
}
