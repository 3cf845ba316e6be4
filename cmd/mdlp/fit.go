package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/dataset"
	"github.com/YuminosukeSato/mdlp/metrics"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
	"github.com/YuminosukeSato/mdlp/preprocessing"
)

// fitParameters configure the discretizer built by the fit command.
type fitParameters struct {
	Criterion string
	MinGain   float64
	MaxDepth  int
	Workers   int
}

func FitCommand() *cobra.Command {
	var input inputParameters
	var params fitParameters
	var outputFile string

	var cmd = &cobra.Command{
		Use:   "fit -i dataFile -t targetColumn -o outputFile",
		Short: "Learns intervals for every numeric column and saves them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := Fit(cmd.Context(), input, params)
			if err != nil {
				return err
			}
			for _, c := range doc.Columns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d intervals\tMI=%.4f bits\tratio=%.3f\n",
					c.Name, c.Intervals.Len(), c.MutualInformation, c.InformationRatio)
			}
			return writeDocument(outputFile, doc)
		},
	}

	cmd.Flags().StringVarP(&input.InputFile, "input-file", "i", "", "CSV file with a header, or .npy attribute matrix")
	cmd.Flags().StringVarP(&input.LabelsFile, "labels-file", "l", "", ".npy class codes matching an .npy input")
	cmd.Flags().StringVarP(&input.TargetColumn, "target-column", "t", "", "class label column of a CSV input")
	cmd.Flags().StringSliceVarP(&input.Columns, "columns", "c", nil, "columns to discretize (default: all but the target)")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "JSON file to save the categorizers to")
	cmd.Flags().StringVarP(&params.Criterion, "criterion", "", preprocessing.CriterionMDLP, "split criterion: mdlp or min_gain")
	cmd.Flags().Float64VarP(&params.MinGain, "min-gain", "g", 0.1, "information gain threshold in bits for the min_gain criterion")
	cmd.Flags().IntVarP(&params.MaxDepth, "max-depth", "d", 0, "maximum partition tree depth (0 is unlimited)")
	cmd.Flags().IntVarP(&params.Workers, "workers", "w", 1, "goroutines used for fitting (0 uses every CPU)")

	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

// Fit loads the data described by input and returns the fitted document.
func Fit(ctx context.Context, input inputParameters, params fitParameters) (*Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.GetLoggerWithName("cmd.fit")

	table, err := loadTable(input)
	if err != nil {
		return nil, errors.Wrap(err, "error reading training data")
	}
	y, enc, err := table.EncodedTarget()
	if err != nil {
		return nil, err
	}

	opts := []preprocessing.DiscretizerOption{
		preprocessing.WithMaxDepth(params.MaxDepth),
		preprocessing.WithWorkers(params.Workers),
	}
	switch params.Criterion {
	case preprocessing.CriterionMDLP, "":
	case preprocessing.CriterionMinGain:
		opts = append(opts, preprocessing.WithMinGain(params.MinGain))
	default:
		return nil, errors.NewValidationError("criterion", "must be mdlp or min_gain", params.Criterion)
	}

	d := preprocessing.NewMDLPDiscretizer(opts...)
	if err := d.FitContext(ctx, table.X, y); err != nil {
		return nil, err
	}
	codes, err := d.Transform(table.X)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Target:    input.TargetColumn,
		Criterion: d.Criterion,
		Classes:   enc.Labels(),
		Columns:   make([]ColumnEntry, len(table.Columns)),
	}
	classes := intColumn(y, 0)
	for j, name := range table.Columns {
		cat, err := d.Categorizers.Get(j)
		if err != nil {
			return nil, err
		}
		column := intColumn(codes, j)
		mi, err := metrics.MutualInformation(column, classes)
		if err != nil {
			return nil, err
		}
		ratio, err := metrics.InformationRatio(column, classes)
		if err != nil {
			return nil, err
		}
		doc.Columns[j] = ColumnEntry{
			Name:              name,
			Intervals:         cat,
			MutualInformation: mi,
			InformationRatio:  ratio,
		}
		logger.Info("column discretized",
			log.AttributeKey, name,
			log.IntervalsKey, cat.Len(),
			"mutual_information", mi,
		)
	}
	return doc, nil
}

func intColumn(m mat.Matrix, j int) []int {
	col := mat.Col(nil, j, m)
	out := make([]int, len(col))
	for i, v := range col {
		out[i] = int(v)
	}
	return out
}

// classNames returns the labels of table's target column encoded in
// first-appearance order, the same order Fit uses for class codes.
func classNames(table *dataset.Table) ([]int, []string, error) {
	y, enc, err := table.EncodedTarget()
	if err != nil {
		return nil, nil, err
	}
	return intColumn(y, 0), enc.Labels(), nil
}
