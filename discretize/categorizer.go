package discretize

import (
	"encoding/json"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Interval is one category of a Categorizer: the values x with
// Lower < x <= Upper. An infinite bound is inclusive, so ]-Inf, … admits
// -Inf and …, Inf[ admits +Inf.
type Interval struct {
	Label string
	Lower float64
	Upper float64
}

// Contains reports whether x falls in the interval. NaN is never
// contained.
func (iv Interval) Contains(x float64) bool {
	return (math.IsInf(iv.Lower, -1) || iv.Lower < x) &&
		(math.IsInf(iv.Upper, 1) || x <= iv.Upper)
}

func (iv Interval) String() string { return iv.Label }

// FormatBound renders a bound as the shortest decimal text that parses back
// to v, or as -Inf / Inf. Integral values keep a trailing ".0".
func FormatBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsInf(v, 1):
		return "Inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func intervalLabel(lower, upper float64) string {
	closing := "]"
	if math.IsInf(upper, 1) {
		closing = "["
	}
	return "]" + FormatBound(lower) + ", " + FormatBound(upper) + closing
}

// NewInterval returns the interval ]lower, upper] with its canonical label.
func NewInterval(lower, upper float64) Interval {
	return Interval{Label: intervalLabel(lower, upper), Lower: lower, Upper: upper}
}

// ParseInterval reads a label such as "]3.5, 47.0]" or "]47.0, Inf[" back
// into an Interval. The result carries the canonical label, so "]3.5, 47]"
// comes back as "]3.5, 47.0]".
func ParseInterval(label string) (Interval, error) {
	const op = "ParseInterval"

	if len(label) < 2 || label[0] != ']' {
		return Interval{}, errors.NewValueError(op, "interval label must start with ']': "+strconv.Quote(label))
	}
	closing := label[len(label)-1]
	lo, hi, ok := strings.Cut(label[1:len(label)-1], ", ")
	if !ok {
		return Interval{}, errors.NewValueError(op, "interval label must hold two bounds separated by \", \": "+strconv.Quote(label))
	}

	lower, err := parseBound(lo)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "%s: lower bound of %q", op, label)
	}
	upper, err := parseBound(hi)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "%s: upper bound of %q", op, label)
	}

	switch {
	case math.IsInf(lower, 1):
		return Interval{}, errors.NewValueError(op, "lower bound cannot be +Inf: "+strconv.Quote(label))
	case math.IsInf(upper, 1) && closing != '[':
		return Interval{}, errors.NewValueError(op, "an unbounded interval must end with '[': "+strconv.Quote(label))
	case !math.IsInf(upper, 1) && closing != ']':
		return Interval{}, errors.NewValueError(op, "a bounded interval must end with ']': "+strconv.Quote(label))
	case !(lower < upper):
		return Interval{}, errors.NewValueError(op, "lower bound must be below upper bound: "+strconv.Quote(label))
	}
	return NewInterval(lower, upper), nil
}

func parseBound(s string) (float64, error) {
	switch s {
	case "-Inf":
		return math.Inf(-1), nil
	case "Inf":
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Newf("bound %q is not a finite number", s)
	}
	return v, nil
}

// Categorizer maps real numbers to the intervals of a partition of the
// real line. It is immutable.
type Categorizer struct {
	intervals []Interval
}

// NewCategorizer checks that intervals are contiguous, start at -Inf and end
// at +Inf, and wraps them.
func NewCategorizer(intervals []Interval) (*Categorizer, error) {
	const op = "NewCategorizer"

	if len(intervals) == 0 {
		return nil, errors.NewValueError(op, "a categorizer needs at least one interval")
	}
	if !math.IsInf(intervals[0].Lower, -1) {
		return nil, errors.NewValueError(op, "the first interval must start at -Inf")
	}
	if !math.IsInf(intervals[len(intervals)-1].Upper, 1) {
		return nil, errors.NewValueError(op, "the last interval must end at Inf")
	}
	for i, iv := range intervals {
		if !(iv.Lower < iv.Upper) {
			return nil, errors.NewValueError(op, "empty interval "+iv.Label)
		}
		if i > 0 && iv.Lower != intervals[i-1].Upper {
			return nil, errors.NewValueError(op, "interval "+iv.Label+" does not continue "+intervals[i-1].Label)
		}
	}
	return &Categorizer{intervals: slices.Clone(intervals)}, nil
}

// Categorizer materializes the tree's leaves as intervals. Bounds are the
// midpoints between the outermost blocks of neighbouring leaves, passed
// through FormatBound and parsed back so that the label text and the
// membership test agree exactly.
func (t *Tree) Categorizer() *Categorizer {
	leaves := t.Leaves()
	intervals := make([]Interval, len(leaves))

	lower := math.Inf(-1)
	for i, leaf := range leaves {
		upper := math.Inf(1)
		if i < len(leaves)-1 {
			upper = t.Bound(leaf.Range.Last)
		}
		intervals[i] = NewInterval(lower, upper)
		lower = upper
	}
	return &Categorizer{intervals: intervals}
}

// Bound returns the interval bound between blocks cut and cut+1: their
// midpoint, rounded to the float64 its FormatBound text parses to.
func (t *Tree) Bound(cut int) float64 {
	return roundTrip(midpoint(t.Blocks[cut].Value, t.Blocks[cut+1].Value))
}

// midpoint returns a value m with a <= m < b for a < b, so that a stays in
// the lower interval and b in the upper one.
func midpoint(a, b float64) float64 {
	m := a/2 + b/2
	if m < a || m >= b {
		return a
	}
	return m
}

func roundTrip(v float64) float64 {
	parsed, err := strconv.ParseFloat(FormatBound(v), 64)
	if err != nil {
		// FormatBound output of a finite float always parses
		panic(err)
	}
	return parsed
}

// Intervals returns a copy of the intervals in increasing order.
func (c *Categorizer) Intervals() []Interval {
	return slices.Clone(c.intervals)
}

// Len returns the number of intervals.
func (c *Categorizer) Len() int { return len(c.intervals) }

// Labels returns the interval labels in increasing order.
func (c *Categorizer) Labels() []string {
	labels := make([]string, len(c.intervals))
	for i, iv := range c.intervals {
		labels[i] = iv.Label
	}
	return labels
}

// Cuts returns the finite bounds between consecutive intervals.
func (c *Categorizer) Cuts() []float64 {
	cuts := make([]float64, 0, len(c.intervals)-1)
	for _, iv := range c.intervals[:len(c.intervals)-1] {
		cuts = append(cuts, iv.Upper)
	}
	return cuts
}

// Categorize returns the index and label of the interval containing x.
// -Inf maps to the first interval and +Inf to the last; ok is false only
// for NaN.
func (c *Categorizer) Categorize(x float64) (index int, label string, ok bool) {
	if math.IsNaN(x) {
		return -1, "", false
	}
	// first interval whose upper bound admits x
	i := sort.Search(len(c.intervals), func(i int) bool {
		up := c.intervals[i].Upper
		return math.IsInf(up, 1) || x <= up
	})
	if i == len(c.intervals) || !c.intervals[i].Contains(x) {
		return -1, "", false
	}
	return i, c.intervals[i].Label, true
}

// MarshalJSON writes the categorizer as its list of labels.
func (c *Categorizer) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Labels())
}

// UnmarshalJSON rebuilds the categorizer from its labels.
func (c *Categorizer) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return errors.Wrap(err, "categorizer: expected a list of interval labels")
	}
	parsed, err := FromLabels(labels)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// GobEncode lets estimators holding categorizers be saved with gob.
func (c *Categorizer) GobEncode() ([]byte, error) { return c.MarshalJSON() }

// GobDecode implements gob.GobDecoder.
func (c *Categorizer) GobDecode(data []byte) error { return c.UnmarshalJSON(data) }

// FromLabels parses every label with ParseInterval and validates the
// result with NewCategorizer.
func FromLabels(labels []string) (*Categorizer, error) {
	intervals := make([]Interval, len(labels))
	for i, l := range labels {
		iv, err := ParseInterval(l)
		if err != nil {
			return nil, err
		}
		intervals[i] = iv
	}
	return NewCategorizer(intervals)
}

// CategorizerSet maps attribute (column) indices to their categorizers.
type CategorizerSet map[int]*Categorizer

// Get returns the categorizer of attribute or ErrUnknownAttribute.
func (s CategorizerSet) Get(attribute int) (*Categorizer, error) {
	c, ok := s[attribute]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAttribute, "attribute %d", attribute)
	}
	return c, nil
}

// Attributes returns the attribute indices in increasing order.
func (s CategorizerSet) Attributes() []int {
	attrs := make([]int, 0, len(s))
	for a := range s {
		attrs = append(attrs, a)
	}
	slices.Sort(attrs)
	return attrs
}

// ErrUnknownAttribute is returned by CategorizerSet.Get.
var ErrUnknownAttribute = errors.New("no categorizer for attribute")
