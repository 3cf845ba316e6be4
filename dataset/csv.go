// Package dataset loads attribute columns and class labels for
// discretization from CSV and .npy files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Params selects what LoadCSV reads.
type Params struct {
	// TargetColumn names the class label column. Empty means the file has
	// no labels, as when applying a fitted categorizer set.
	TargetColumn string
	// Columns lists the numeric columns to read. Empty means every column
	// except the target.
	Columns []string
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// DataError describes a skipped record. Line is 1-based and counts the
// header.
type DataError struct {
	Line  int
	Error string
}

// Table holds numeric attribute columns and, optionally, one label per row.
type Table struct {
	Columns []string
	X       *mat.Dense
	Labels  []string
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string, p Params) (*Table, []DataError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error opening file")
	}
	defer f.Close()
	return LoadCSV(f, p)
}

// LoadCSV reads a CSV stream whose first record is a header. Records with
// a missing label, a wrong field count or a value that is not a finite
// number are skipped and reported as DataErrors. A bad header, an unknown
// column or malformed quoting fails the whole load.
func LoadCSV(r io.Reader, p Params) (*Table, []DataError, error) {
	reader := csv.NewReader(r)
	if p.Comma != 0 {
		reader.Comma = p.Comma
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading data header")
	}

	target := -1
	if p.TargetColumn != "" {
		if target = slices.Index(header, p.TargetColumn); target < 0 {
			return nil, nil, errors.Newf("target column %s not found in data header", p.TargetColumn)
		}
	}
	columns, indices, err := selectColumns(header, p.Columns, target)
	if err != nil {
		return nil, nil, err
	}

	var (
		data       []float64
		labels     []string
		dataErrors []DataError
	)
	row := make([]float64, len(indices))
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if errors.Is(err, csv.ErrFieldCount) {
			dataErrors = append(dataErrors, DataError{Line: line, Error: err.Error()})
			continue
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "error reading line %d", line)
		}

		if target >= 0 {
			if strings.TrimSpace(record[target]) == "" {
				dataErrors = append(dataErrors, DataError{Line: line, Error: "missing target value"})
				continue
			}
		}
		if err := parseRow(record, indices, columns, row); err != nil {
			dataErrors = append(dataErrors, DataError{Line: line, Error: err.Error()})
			continue
		}

		data = append(data, row...)
		if target >= 0 {
			labels = append(labels, strings.TrimSpace(record[target]))
		}
	}

	rows := 0
	if len(indices) > 0 {
		rows = len(data) / len(indices)
	}
	if rows == 0 {
		return nil, dataErrors, errors.NewInsufficientDataError("LoadCSV", 1, 0)
	}
	return &Table{
		Columns: columns,
		X:       mat.NewDense(rows, len(indices), data),
		Labels:  labels,
	}, dataErrors, nil
}

func selectColumns(header, wanted []string, target int) ([]string, []int, error) {
	if len(wanted) == 0 {
		var names []string
		var indices []int
		for i, name := range header {
			if i != target {
				names = append(names, name)
				indices = append(indices, i)
			}
		}
		if len(indices) == 0 {
			return nil, nil, errors.New("no attribute columns in data header")
		}
		return names, indices, nil
	}

	indices := make([]int, len(wanted))
	for j, name := range wanted {
		i := slices.Index(header, name)
		if i < 0 {
			return nil, nil, errors.Newf("column %s not found in data header", name)
		}
		if i == target {
			return nil, nil, errors.Newf("column %s is the target column", name)
		}
		indices[j] = i
	}
	return slices.Clone(wanted), indices, nil
}

func parseRow(record []string, indices []int, names []string, row []float64) error {
	for j, i := range indices {
		field := strings.TrimSpace(record[i])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("column %s: %q is not a number", names[j], field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("column %s: %q is not a finite number", names[j], field)
		}
		row[j] = v
	}
	return nil
}

// Rows returns the number of records.
func (t *Table) Rows() int {
	r, _ := t.X.Dims()
	return r
}

// Column returns a copy of attribute column j.
func (t *Table) Column(j int) []float64 {
	return mat.Col(nil, j, t.X)
}

// ColumnIndex returns the position of the named attribute column.
func (t *Table) ColumnIndex(name string) (int, error) {
	if j := slices.Index(t.Columns, name); j >= 0 {
		return j, nil
	}
	return -1, errors.Newf("unknown column %s", name)
}

// EncodedTarget returns the labels as an n×1 matrix of class codes together
// with the encoder that maps codes back to labels.
func (t *Table) EncodedTarget() (*mat.Dense, *discretize.ClassEncoder[string], error) {
	if t.Labels == nil {
		return nil, nil, errors.New("table has no target column")
	}
	enc := discretize.NewClassEncoder[string]()
	y := mat.NewDense(len(t.Labels), 1, nil)
	for i, l := range t.Labels {
		y.Set(i, 0, float64(enc.Encode(l)))
	}
	return y, enc, nil
}
