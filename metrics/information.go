// Package metrics evaluates how much class information a discretized
// attribute keeps.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Entropy はクラス頻度 counts のシャノンエントロピー（ビット）を計算する
func Entropy(counts []float64) (float64, error) {
	total := floats.Sum(counts)
	if len(counts) == 0 || total == 0 {
		return 0, errors.NewValueError("Entropy", "counts must contain at least one positive value")
	}
	if floats.Min(counts) < 0 {
		return 0, errors.NewValueError("Entropy", "counts must be non-negative")
	}

	p := make([]float64, len(counts))
	floats.ScaleTo(p, 1/total, counts)
	return stat.Entropy(p) / math.Ln2, nil
}

// Contingency は区間コード codes とクラスコード classes の分割表を作る
// 行が区間、列がクラス。行と列は出現したコードを昇順に詰めたもの
func Contingency(codes, classes []int) (*mat.Dense, error) {
	const op = "Contingency"
	if len(codes) != len(classes) {
		return nil, errors.NewShapeMismatchError(op, len(codes), len(classes))
	}
	if len(codes) == 0 {
		return nil, errors.NewInsufficientDataError(op, 1, 0)
	}
	if err := errors.CheckClassCodes(op, codes, 0); err != nil {
		return nil, err
	}
	if err := errors.CheckClassCodes(op, classes, 0); err != nil {
		return nil, err
	}

	codes, rowCodes := discretize.CompactCodes(codes)
	classes, colCodes := discretize.CompactCodes(classes)
	table := mat.NewDense(len(rowCodes), len(colCodes), nil)
	for i, code := range codes {
		table.Set(code, classes[i], table.At(code, classes[i])+1)
	}
	return table, nil
}

// ConditionalEntropy returns H(class | code) in bits.
func ConditionalEntropy(codes, classes []int) (float64, error) {
	table, err := Contingency(codes, classes)
	if err != nil {
		return 0, err
	}
	n := float64(len(codes))

	var h float64
	rows, _ := table.Dims()
	for r := 0; r < rows; r++ {
		row := table.RawRowView(r)
		w := floats.Sum(row)
		if w == 0 {
			continue
		}
		e, err := Entropy(row)
		if err != nil {
			return 0, err
		}
		h += w / n * e
	}
	return h, nil
}

// MutualInformation returns I(class; code) = H(class) - H(class | code) in
// bits.
func MutualInformation(codes, classes []int) (float64, error) {
	table, err := Contingency(codes, classes)
	if err != nil {
		return 0, err
	}
	hClass, err := Entropy(classTotals(table))
	if err != nil {
		return 0, err
	}
	hCond, err := ConditionalEntropy(codes, classes)
	if err != nil {
		return 0, err
	}
	// clamp rounding noise
	return math.Max(0, hClass-hCond), nil
}

// InformationRatio returns I(class; code) / H(class), the share of class
// entropy explained by the codes. A pure target yields 1.
func InformationRatio(codes, classes []int) (float64, error) {
	mi, err := MutualInformation(codes, classes)
	if err != nil {
		return 0, err
	}
	table, _ := Contingency(codes, classes)
	h, _ := Entropy(classTotals(table))
	if h == 0 {
		return 1, nil
	}
	return math.Min(1, mi/h), nil
}

// classTotals sums the contingency table over intervals.
func classTotals(table *mat.Dense) []float64 {
	_, cols := table.Dims()
	totals := make([]float64, cols)
	for j := range totals {
		totals[j] = floats.Sum(mat.Col(nil, j, table))
	}
	return totals
}
