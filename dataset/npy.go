package dataset

import (
	"io"
	"os"
	"strconv"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// ReadNpy reads a float64 matrix from an .npy stream.
func ReadNpy(r io.Reader) (*mat.Dense, error) {
	npy, err := npyio.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading npy header")
	}
	m := &mat.Dense{}
	if err := npy.Read(m); err != nil {
		return nil, errors.Wrap(err, "error reading npy data")
	}
	return m, nil
}

// ReadNpyFile opens path and calls ReadNpy.
func ReadNpyFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening file")
	}
	defer f.Close()
	return ReadNpy(f)
}

// WriteNpy writes m as a float64 .npy array.
func WriteNpy(w io.Writer, m mat.Matrix) error {
	if err := npyio.Write(w, m); err != nil {
		return errors.Wrap(err, "error writing npy data")
	}
	return nil
}

// FromNpy builds a Table from an attribute matrix and an n×1 (or 1×n)
// matrix of integer class codes. Columns are named by position.
func FromNpy(X, y *mat.Dense) (*Table, error) {
	const op = "FromNpy"

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewInsufficientDataError(op, 1, 0)
	}
	yr, yc := y.Dims()
	if !(yc == 1 && yr == r) && !(yr == 1 && yc == r) {
		return nil, errors.NewShapeMismatchError(op, r, yr*yc)
	}
	codes := mat.DenseCopyOf(y).RawMatrix().Data

	labels := make([]string, r)
	for i, v := range codes {
		if !errors.IsIntegral(v) {
			return nil, errors.NewInvalidSampleError(op, i, v, "class labels must be integers")
		}
		labels[i] = strconv.FormatInt(int64(v), 10)
	}

	columns := make([]string, c)
	for j := range columns {
		columns[j] = strconv.Itoa(j)
	}
	return &Table{Columns: columns, X: X, Labels: labels}, nil
}
