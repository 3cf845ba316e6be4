package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/dataset"
	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

// inputParameters locate the data a subcommand reads.
type inputParameters struct {
	InputFile    string
	LabelsFile   string
	TargetColumn string
	Columns      []string
}

// Document is the JSON file written by fit and read by apply.
type Document struct {
	Target    string        `json:"target,omitempty"`
	Criterion string        `json:"criterion"`
	Classes   []string      `json:"classes,omitempty"`
	Columns   []ColumnEntry `json:"columns"`
}

// ColumnEntry holds the categorizer fitted for one column.
type ColumnEntry struct {
	Name              string                  `json:"name"`
	Intervals         *discretize.Categorizer `json:"intervals"`
	MutualInformation float64                 `json:"mutual_information"`
	InformationRatio  float64                 `json:"information_ratio"`
}

func isNpy(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".npy")
}

// loadTable reads a CSV file, or an .npy attribute matrix paired with an
// .npy label vector.
func loadTable(p inputParameters) (*dataset.Table, error) {
	if !isNpy(p.InputFile) {
		table, dataErrors, err := dataset.LoadCSVFile(p.InputFile, dataset.Params{
			TargetColumn: p.TargetColumn,
			Columns:      p.Columns,
		})
		printDataErrors(dataErrors)
		return table, err
	}

	X, err := dataset.ReadNpyFile(p.InputFile)
	if err != nil {
		return nil, err
	}
	if p.LabelsFile == "" {
		if p.TargetColumn != "" {
			return nil, errors.New("an .npy input needs --labels-file instead of --target-column")
		}
		r, _ := X.Dims()
		y := mat.NewDense(r, 1, nil)
		table, err := dataset.FromNpy(X, y)
		if err != nil {
			return nil, err
		}
		table.Labels = nil
		return selectColumns(table, p.Columns)
	}
	y, err := dataset.ReadNpyFile(p.LabelsFile)
	if err != nil {
		return nil, err
	}
	table, err := dataset.FromNpy(X, y)
	if err != nil {
		return nil, err
	}
	return selectColumns(table, p.Columns)
}

// selectColumns keeps the named columns of table in the given order.
func selectColumns(table *dataset.Table, columns []string) (*dataset.Table, error) {
	if len(columns) == 0 {
		return table, nil
	}
	X := mat.NewDense(table.Rows(), len(columns), nil)
	for k, name := range columns {
		j, err := table.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		X.SetCol(k, table.Column(j))
	}
	return &dataset.Table{Columns: columns, X: X, Labels: table.Labels}, nil
}

func printDataErrors(dataErrors []dataset.DataError) {
	if len(dataErrors) == 0 {
		return
	}
	logger := log.GetLoggerWithName("dataset")
	for _, e := range dataErrors {
		logger.Warn("skipped record", "line", e.Line, log.ErrorTypeKey, e.Error)
	}
	logger.Warn("records skipped while loading data", "count", len(dataErrors))
}

func writeDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error encoding categorizers")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return nil
}

func readDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "error decoding categorizers from %s", path)
	}
	for _, c := range doc.Columns {
		if c.Intervals == nil {
			return nil, errors.Newf("column %s has no intervals", c.Name)
		}
	}
	return &doc, nil
}
