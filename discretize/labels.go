package discretize

import "slices"

// ClassEncoder assigns integer class codes to labels in order of first
// appearance.
type ClassEncoder[L comparable] struct {
	codes  map[L]int
	labels []L
}

// NewClassEncoder returns an empty encoder.
func NewClassEncoder[L comparable]() *ClassEncoder[L] {
	return &ClassEncoder[L]{codes: make(map[L]int)}
}

// Encode returns the code of label, assigning the next free code to an
// unseen label.
func (e *ClassEncoder[L]) Encode(label L) int {
	if code, ok := e.codes[label]; ok {
		return code
	}
	code := len(e.labels)
	e.codes[label] = code
	e.labels = append(e.labels, label)
	return code
}

// EncodeAll encodes every label.
func (e *ClassEncoder[L]) EncodeAll(labels []L) []int {
	codes := make([]int, len(labels))
	for i, l := range labels {
		codes[i] = e.Encode(l)
	}
	return codes
}

// Code looks up label without assigning a code.
func (e *ClassEncoder[L]) Code(label L) (int, bool) {
	code, ok := e.codes[label]
	return code, ok
}

// Label returns the label of code.
func (e *ClassEncoder[L]) Label(code int) (L, bool) {
	if code < 0 || code >= len(e.labels) {
		var zero L
		return zero, false
	}
	return e.labels[code], true
}

// Len returns the number of distinct labels seen.
func (e *ClassEncoder[L]) Len() int { return len(e.labels) }

// Labels returns the labels indexed by code.
func (e *ClassEncoder[L]) Labels() []L {
	out := make([]L, len(e.labels))
	copy(out, e.labels)
	return out
}

// CompactCodes maps class codes onto 0..k-1 by rank, so code order is
// kept and k is the number of distinct codes. distinct[c] is the original
// code of compact code c.
func CompactCodes(codes []int) (dense, distinct []int) {
	distinct = slices.Clone(codes)
	slices.Sort(distinct)
	distinct = slices.Clip(slices.Compact(distinct))

	dense = make([]int, len(codes))
	for i, c := range codes {
		dense[i], _ = slices.BinarySearch(distinct, c)
	}
	return dense, distinct
}
