package discretize

// Split is the best binary partition of a range.
type Split struct {
	// Cut is the index of the last block of the left side.
	Cut         int
	Left, Right Range
	LeftStats   RangeStats
	RightStats  RangeStats
	// Entropy is the class information entropy
	// (|L|·H(L) + |R|·H(R)) / (|L|+|R|).
	Entropy float64
}

// BestSplit scans every cut between consecutive blocks of r and returns
// the one with minimal class information entropy. Ties keep the lowest
// cut index. A single-block range has no candidate and reports false.
func (a *Accumulator) BestSplit(r Range) (Split, bool) {
	if r.Len() < 2 {
		return Split{}, false
	}

	var best Split
	found := false
	for cut := r.First; cut < r.Last; cut++ {
		left := a.stats(r.First, cut)
		right := a.stats(cut+1, r.Last)
		n := float64(left.Count + right.Count)
		e := (float64(left.Count)*left.Entropy + float64(right.Count)*right.Entropy) / n

		if !found || e < best.Entropy {
			best = Split{
				Cut:        cut,
				Left:       Range{First: r.First, Last: cut},
				Right:      Range{First: cut + 1, Last: r.Last},
				LeftStats:  left,
				RightStats: right,
				Entropy:    e,
			}
			found = true
		}
	}
	return best, found
}
