package discretize

import (
	"math"
	"slices"
	"testing"
)

func TestClassEncoder(t *testing.T) {
	enc := NewClassEncoder[string]()

	codes := enc.EncodeAll([]string{"setosa", "virginica", "setosa", "versicolor"})
	want := []int{0, 1, 0, 2}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("EncodeAll = %v, want %v", codes, want)
		}
	}

	if enc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", enc.Len())
	}
	if code, ok := enc.Code("virginica"); !ok || code != 1 {
		t.Errorf("Code(virginica) = %d, %v", code, ok)
	}
	if _, ok := enc.Code("unknown"); ok {
		t.Error("Code should not assign codes")
	}
	if label, ok := enc.Label(2); !ok || label != "versicolor" {
		t.Errorf("Label(2) = %q, %v", label, ok)
	}
	if _, ok := enc.Label(3); ok {
		t.Error("Label(3) should be out of range")
	}
	if _, ok := enc.Label(-1); ok {
		t.Error("Label(-1) should be out of range")
	}

	labels := enc.Labels()
	labels[0] = "changed"
	if l, _ := enc.Label(0); l != "setosa" {
		t.Error("Labels() must return a copy")
	}
}

func TestCompactCodes(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		dense    []int
		distinct []int
	}{
		{"already dense", []int{0, 2, 1, 0}, []int{0, 2, 1, 0}, []int{0, 1, 2}},
		{"gaps", []int{9, 5, 9, 5}, []int{1, 0, 1, 0}, []int{5, 9}},
		{"huge codes", []int{0, math.MaxInt, 1 << 40}, []int{0, 2, 1}, []int{0, 1 << 40, math.MaxInt}},
		{"empty", nil, []int{}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dense, distinct := CompactCodes(tt.codes)
			if !slices.Equal(dense, tt.dense) {
				t.Errorf("dense = %v, want %v", dense, tt.dense)
			}
			if !slices.Equal(distinct, tt.distinct) {
				t.Errorf("distinct = %v, want %v", distinct, tt.distinct)
			}
		})
	}
}
