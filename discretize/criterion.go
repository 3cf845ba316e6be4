package discretize

import (
	"fmt"
	"math"
	"strconv"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Decision is a Criterion's verdict on a candidate split.
type Decision struct {
	Accept bool
	// Gain is the parent entropy minus the split's class information
	// entropy.
	Gain float64
	// Threshold is the gain the split had to exceed.
	Threshold float64
}

// Criterion decides whether the best split of a range is kept.
type Criterion interface {
	// Accept evaluates split against the stats of the range it divides.
	Accept(parent RangeStats, split Split) (Decision, error)
	String() string
}

// MDLP is the Fayyad–Irani minimum description length criterion. A split
// of n samples over k classes is accepted iff
//
//	gain > (log2(n-1) + log2(3^k-2) - k·H + k1·H1 + k2·H2) / n
type MDLP struct{}

// Accept implements Criterion.
func (MDLP) Accept(parent RangeStats, split Split) (Decision, error) {
	if err := checkParent("MDLP.Accept", parent); err != nil {
		return Decision{}, err
	}

	n := float64(parent.Count)
	k := float64(parent.Classes)
	k1 := float64(split.LeftStats.Classes)
	k2 := float64(split.RightStats.Classes)

	gain := parent.Entropy - split.Entropy
	delta := log2ThreePowMinusTwo(parent.Classes) - k*parent.Entropy +
		k1*split.LeftStats.Entropy + k2*split.RightStats.Entropy
	threshold := (math.Log2(n-1) + delta) / n

	return Decision{
		Accept:    gain > 0 && gain > threshold,
		Gain:      gain,
		Threshold: threshold,
	}, nil
}

func (MDLP) String() string { return "mdlp" }

// MinGain accepts every split whose information gain exceeds Threshold.
type MinGain struct {
	Threshold float64
}

// Accept implements Criterion.
func (m MinGain) Accept(parent RangeStats, split Split) (Decision, error) {
	if err := checkParent("MinGain.Accept", parent); err != nil {
		return Decision{}, err
	}
	gain := parent.Entropy - split.Entropy
	return Decision{
		Accept:    gain > 0 && gain > m.Threshold,
		Gain:      gain,
		Threshold: m.Threshold,
	}, nil
}

func (m MinGain) String() string {
	return "min_gain(" + strconv.FormatFloat(m.Threshold, 'g', -1, 64) + ")"
}

// checkParent asserts n >= 2, where log2(n-1) is defined. Single-block
// ranges never get here because BestSplit finds no candidate for them.
func checkParent(op string, parent RangeStats) error {
	if parent.Count < 2 {
		return errors.NewValueError(op, fmt.Sprintf("a split needs at least 2 samples, got %d", parent.Count))
	}
	return nil
}

// log2ThreePowMinusTwo returns log2(3^k - 2) without overflowing 3^k for
// large k.
func log2ThreePowMinusTwo(k int) float64 {
	if k <= 30 {
		return math.Log2(math.Pow(3, float64(k)) - 2)
	}
	return float64(k)*math.Log2(3) + math.Log1p(-2*math.Pow(3, -float64(k)))/math.Ln2
}
