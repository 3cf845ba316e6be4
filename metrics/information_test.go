package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name    string
		counts  []float64
		want    float64
		wantErr bool
	}{
		{"pure", []float64{5, 0}, 0, false},
		{"balanced", []float64{3, 3}, 1, false},
		{"four classes", []float64{1, 1, 1, 1}, 2, false},
		{"skewed", []float64{1, 3}, -(0.25*math.Log2(0.25) + 0.75*math.Log2(0.75)), false},
		{"empty", nil, 0, true},
		{"all zero", []float64{0, 0}, 0, true},
		{"negative", []float64{2, -1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entropy(tt.counts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Entropy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContingency(t *testing.T) {
	table, err := Contingency([]int{0, 0, 1, 1, 1}, []int{0, 1, 1, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	r, c := table.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Dims() = (%d, %d), want (2, 3)", r, c)
	}
	want := [][]float64{{1, 1, 0}, {0, 2, 1}}
	for i := range want {
		for j := range want[i] {
			if table.At(i, j) != want[i][j] {
				t.Errorf("table[%d][%d] = %v, want %v", i, j, table.At(i, j), want[i][j])
			}
		}
	}

	_, err = Contingency([]int{0}, []int{0, 1})
	var se *errors.ShapeMismatchError
	if !errors.As(err, &se) {
		t.Errorf("expected ShapeMismatchError, got %v", err)
	}
	_, err = Contingency(nil, nil)
	var ie *errors.InsufficientDataError
	if !errors.As(err, &ie) {
		t.Errorf("expected InsufficientDataError, got %v", err)
	}
	_, err = Contingency([]int{0, -1}, []int{0, 1})
	var is *errors.InvalidSampleError
	if !errors.As(err, &is) {
		t.Errorf("expected InvalidSampleError, got %v", err)
	}
}

func TestContingencySparseCodes(t *testing.T) {
	table, err := Contingency([]int{7, 7, 1 << 40}, []int{0, math.MaxInt, math.MaxInt})
	if err != nil {
		t.Fatal(err)
	}
	r, c := table.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("Dims() = (%d, %d), want (2, 2)", r, c)
	}
	want := [][]float64{{1, 1}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if table.At(i, j) != want[i][j] {
				t.Errorf("table[%d][%d] = %v, want %v", i, j, table.At(i, j), want[i][j])
			}
		}
	}

	mi, err := MutualInformation([]int{0, 0, 1 << 40, 1 << 40}, []int{3, 3, math.MaxInt, math.MaxInt})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mi-1) > 1e-12 {
		t.Errorf("MutualInformation = %v, want 1", mi)
	}
}

func TestMutualInformation(t *testing.T) {
	tests := []struct {
		name    string
		codes   []int
		classes []int
		mi      float64
		ratio   float64
	}{
		{"perfect separation", []int{0, 0, 1, 1}, []int{0, 0, 1, 1}, 1, 1},
		{"independent", []int{0, 0, 1, 1}, []int{0, 1, 0, 1}, 0, 0},
		{"single interval", []int{0, 0, 0, 0}, []int{0, 1, 0, 1}, 0, 0},
		{"pure target", []int{0, 1, 2}, []int{1, 1, 1}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mi, err := MutualInformation(tt.codes, tt.classes)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(mi-tt.mi) > 1e-12 {
				t.Errorf("MutualInformation() = %v, want %v", mi, tt.mi)
			}
			ratio, err := InformationRatio(tt.codes, tt.classes)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(ratio-tt.ratio) > 1e-12 {
				t.Errorf("InformationRatio() = %v, want %v", ratio, tt.ratio)
			}
		})
	}
}

func TestConditionalEntropy(t *testing.T) {
	// interval 0 is pure, interval 1 is balanced and holds half the samples
	h, err := ConditionalEntropy([]int{0, 0, 1, 1}, []int{0, 0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(h-0.5) > 1e-12 {
		t.Errorf("ConditionalEntropy() = %v, want 0.5", h)
	}
}
