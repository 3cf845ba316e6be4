package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/dataset"
	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/preprocessing"
)

func ApplyCommand() *cobra.Command {
	var modelFile string
	var inputFile string
	var outputFile string
	var codes bool

	var cmd = &cobra.Command{
		Use:   "apply -m modelFile -i dataFile [-o outputFile] [--codes]",
		Short: "Replaces every value by the label (or code) of the interval it falls in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(modelFile)
			if err != nil {
				return err
			}
			columns, result, err := Apply(doc, inputFile)
			if err != nil {
				return err
			}

			if outputFile == "" {
				return writeResult(cmd.OutOrStdout(), columns, result, codes)
			}
			if isNpy(outputFile) {
				return writeNpyFile(outputFile, result)
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return errors.Wrapf(err, "error creating output file %s", outputFile)
			}
			defer f.Close()
			return writeResult(f, columns, result, codes)
		},
	}

	cmd.Flags().StringVarP(&modelFile, "model", "m", "", "JSON file written by fit")
	cmd.Flags().StringVarP(&inputFile, "input-file", "i", "", "CSV or .npy file holding the fitted columns")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "output file (optional, stdout if not present; .npy writes codes)")
	cmd.Flags().BoolVarP(&codes, "codes", "", false, "write interval codes instead of labels")

	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("input-file")

	return cmd
}

// appliedColumns pairs the codes of each column with its labels.
type appliedColumns struct {
	codes  mat.Matrix
	labels [][]string
}

// Apply categorizes the document's columns of inputFile.
func Apply(doc *Document, inputFile string) ([]string, *appliedColumns, error) {
	names := make([]string, len(doc.Columns))
	categorizers := make([]*discretize.Categorizer, len(doc.Columns))
	for j, c := range doc.Columns {
		names[j] = c.Name
		categorizers[j] = c.Intervals
	}

	d, err := preprocessing.FromCategorizers(categorizers)
	if err != nil {
		return nil, nil, err
	}
	table, err := loadTable(inputParameters{InputFile: inputFile, Columns: names})
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading input data")
	}
	codes, err := d.Transform(table.X)
	if err != nil {
		return nil, nil, err
	}
	labels, err := d.InverseLabels(codes)
	if err != nil {
		return nil, nil, err
	}
	return names, &appliedColumns{codes: codes, labels: labels}, nil
}

func writeResult(w io.Writer, columns []string, result *appliedColumns, codes bool) error {
	out := csv.NewWriter(w)
	if err := out.Write(columns); err != nil {
		return errors.Wrap(err, "error writing header")
	}
	record := make([]string, len(columns))
	for i, row := range result.labels {
		for j := range columns {
			if codes {
				record[j] = strconv.Itoa(int(result.codes.At(i, j)))
			} else {
				record[j] = row[j]
			}
		}
		if err := out.Write(record); err != nil {
			return errors.Wrapf(err, "error writing row %d", i)
		}
	}
	out.Flush()
	return errors.Wrap(out.Error(), "error flushing output")
}

func writeNpyFile(path string, result *appliedColumns) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating output file %s", path)
	}
	defer f.Close()
	return dataset.WriteNpy(f, result.codes)
}
