package discretize

import (
	"fmt"
	"math"
)

// Range is an inclusive span [First, Last] of block indices.
type Range struct {
	First, Last int
}

// Len returns the number of blocks in the range.
func (r Range) Len() int { return r.Last - r.First + 1 }

func (r Range) String() string { return fmt.Sprintf("[%d, %d]", r.First, r.Last) }

// RangeStats summarises the class distribution over a range.
type RangeStats struct {
	// Count is the number of samples.
	Count int
	// Classes is the number of classes with a positive count.
	Classes int
	// Entropy is the Shannon entropy of the class distribution in bits.
	Entropy float64
}

// Accumulator answers RangeStats queries over a fixed block slice in
// O(classes) time using per-class prefix sums. It is read-only after
// construction and safe for concurrent use.
type Accumulator struct {
	blocks   []Block
	nClasses int
	// prefix[i*nClasses+c] counts class c over blocks[:i].
	prefix []int
}

// NewAccumulator builds the prefix sums for blocks.
func NewAccumulator(blocks []Block, nClasses int) *Accumulator {
	prefix := make([]int, (len(blocks)+1)*nClasses)
	for i, b := range blocks {
		row, next := prefix[i*nClasses:(i+1)*nClasses], prefix[(i+1)*nClasses:(i+2)*nClasses]
		for c := range next {
			next[c] = row[c] + b.ClassCounts[c]
		}
	}
	return &Accumulator{blocks: blocks, nClasses: nClasses, prefix: prefix}
}

// Blocks returns the blocks the accumulator was built over.
func (a *Accumulator) Blocks() []Block { return a.blocks }

// Classes returns the number of class codes.
func (a *Accumulator) Classes() int { return a.nClasses }

// ClassCounts returns the per-class counts over r.
func (a *Accumulator) ClassCounts(r Range) []int {
	counts := make([]int, a.nClasses)
	for c := range counts {
		counts[c] = a.count(r.First, r.Last, c)
	}
	return counts
}

func (a *Accumulator) count(first, last, class int) int {
	return a.prefix[(last+1)*a.nClasses+class] - a.prefix[first*a.nClasses+class]
}

// Stats returns count, observed classes and entropy over r.
func (a *Accumulator) Stats(r Range) RangeStats {
	return a.stats(r.First, r.Last)
}

func (a *Accumulator) stats(first, last int) RangeStats {
	var s RangeStats
	for c := 0; c < a.nClasses; c++ {
		if n := a.count(first, last, c); n > 0 {
			s.Count += n
			s.Classes++
		}
	}
	if s.Classes <= 1 {
		return s
	}

	n := float64(s.Count)
	for c := 0; c < a.nClasses; c++ {
		if k := a.count(first, last, c); k > 0 {
			p := float64(k) / n
			s.Entropy -= p * math.Log2(p)
		}
	}
	// rounding can leave a tiny negative value for near-pure ranges
	if s.Entropy < 0 {
		s.Entropy = 0
	}
	return s
}
