package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/visualize"
)

// columnTree fits the partition tree of a single column.
func columnTree(ctx context.Context, input inputParameters, column string, maxDepth int) (*discretize.Tree, []float64, []int, []string, error) {
	if column == "" {
		return nil, nil, nil, nil, errors.New("a --column is required")
	}
	input.Columns = []string{column}
	table, err := loadTable(input)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "error reading data")
	}
	classes, names, err := classNames(table)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	values := table.Column(0)

	d := discretize.New(discretize.WithMaxDepth(maxDepth))
	tree, err := d.Fit(ctx, values, classes)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return tree, values, classes, names, nil
}

func addColumnFlags(cmd *cobra.Command, input *inputParameters, column *string, maxDepth *int) {
	cmd.Flags().StringVarP(&input.InputFile, "input-file", "i", "", "CSV file with a header, or .npy attribute matrix")
	cmd.Flags().StringVarP(&input.LabelsFile, "labels-file", "l", "", ".npy class codes matching an .npy input")
	cmd.Flags().StringVarP(&input.TargetColumn, "target-column", "t", "", "class label column of a CSV input")
	cmd.Flags().StringVarP(column, "column", "c", "", "column to discretize")
	cmd.Flags().IntVarP(maxDepth, "max-depth", "d", 0, "maximum partition tree depth (0 is unlimited)")

	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("column")
}

func RenderCommand() *cobra.Command {
	var input inputParameters
	var column string
	var maxDepth int
	var outputFile string
	var format string

	var cmd = &cobra.Command{
		Use:   "render -i dataFile -t targetColumn -c column -o outputFile [-f format]",
		Short: "Draws the partition tree of one column with graphviz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gvFormat, err := visualize.ParseFormat(format)
			if err != nil {
				return err
			}
			tree, _, _, names, err := columnTree(cmd.Context(), input, column, maxDepth)
			if err != nil {
				return err
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return errors.Wrapf(err, "error creating output file %s", outputFile)
			}
			defer f.Close()
			return visualize.RenderTree(f, tree, names, gvFormat)
		},
	}

	addColumnFlags(cmd, &input, &column, &maxDepth)
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "file to render the tree to")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png or jpg")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func PlotCommand() *cobra.Command {
	var input inputParameters
	var column string
	var maxDepth int
	var outputFile string
	var bins int

	var cmd = &cobra.Command{
		Use:   "plot -i dataFile -t targetColumn -c column -o image.png",
		Short: "Plots per-class histograms of one column with the fitted cut points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, values, classes, names, err := columnTree(cmd.Context(), input, column, maxDepth)
			if err != nil {
				return err
			}
			p, err := visualize.IntervalPlot(column, values, classes, names, tree.Categorizer(), bins)
			if err != nil {
				return err
			}
			return visualize.SavePlot(p, outputFile)
		},
	}

	addColumnFlags(cmd, &input, &column, &maxDepth)
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "image file; the extension picks the format")
	cmd.Flags().IntVarP(&bins, "bins", "b", 20, "histogram bins per class")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}
