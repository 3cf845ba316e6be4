package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/dataset"
)

// writeTrainingCSV writes 40 rows: x separates "low" from "high" at 19.5,
// noise is constant.
func writeTrainingCSV(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("x,noise,class\n")
	for i := 0; i < 40; i++ {
		class := "low"
		if i >= 20 {
			class = "high"
		}
		fmt.Fprintf(&b, "%d,1,%s\n", i, class)
	}
	path := filepath.Join(dir, "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFitAndApply(t *testing.T) {
	dir := t.TempDir()
	train := writeTrainingCSV(t, dir)
	model := filepath.Join(dir, "model.json")

	stdout, stderr, err := run(t, "--log-format", "json", "fit", "-i", train, "-t", "class", "-o", model)
	require.NoError(t, err)
	require.Contains(t, stdout, "x\t2 intervals")
	require.Contains(t, stdout, "noise\t1 intervals")
	require.Contains(t, stderr, "single interval")

	doc, err := readDocument(model)
	require.NoError(t, err)
	require.Equal(t, "class", doc.Target)
	require.Equal(t, "mdlp", doc.Criterion)
	require.Equal(t, []string{"low", "high"}, doc.Classes)
	require.Len(t, doc.Columns, 2)
	require.Equal(t, []string{"]-Inf, 19.5]", "]19.5, Inf["}, doc.Columns[0].Intervals.Labels())
	require.Equal(t, []string{"]-Inf, Inf["}, doc.Columns[1].Intervals.Labels())
	require.InDelta(t, 1.0, doc.Columns[0].MutualInformation, 1e-9)
	require.InDelta(t, 1.0, doc.Columns[0].InformationRatio, 1e-9)
	require.InDelta(t, 0.0, doc.Columns[1].MutualInformation, 1e-9)

	input := filepath.Join(dir, "new.csv")
	require.NoError(t, os.WriteFile(input, []byte("id,noise,x\na,5,3\nb,5,25\nc,5,19.5\n"), 0o644))

	stdout, _, err = run(t, "apply", "-m", model, "-i", input)
	require.NoError(t, err)
	require.Equal(t, "x,noise\n\"]-Inf, 19.5]\",\"]-Inf, Inf[\"\n\"]19.5, Inf[\",\"]-Inf, Inf[\"\n\"]-Inf, 19.5]\",\"]-Inf, Inf[\"\n", stdout)

	stdout, _, err = run(t, "apply", "-m", model, "-i", input, "--codes")
	require.NoError(t, err)
	require.Equal(t, "x,noise\n0,0\n1,0\n0,0\n", stdout)

	npyOut := filepath.Join(dir, "codes.npy")
	_, _, err = run(t, "apply", "-m", model, "-i", input, "-o", npyOut)
	require.NoError(t, err)
	codes, err := dataset.ReadNpyFile(npyOut)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 0, 0, 0}, codes.RawMatrix().Data)
}

func TestFitMinGain(t *testing.T) {
	dir := t.TempDir()
	train := writeTrainingCSV(t, dir)
	model := filepath.Join(dir, "model.json")

	_, _, err := run(t, "fit", "-i", train, "-t", "class", "-c", "x", "--criterion", "min_gain", "-g", "0.5", "-o", model)
	require.NoError(t, err)
	doc, err := readDocument(model)
	require.NoError(t, err)
	require.Equal(t, "min_gain", doc.Criterion)
	require.Len(t, doc.Columns, 1)
	require.Equal(t, 2, doc.Columns[0].Intervals.Len())

	_, _, err = run(t, "fit", "-i", train, "-t", "class", "--criterion", "gini", "-o", model)
	require.Error(t, err)
}

func TestFitNpy(t *testing.T) {
	dir := t.TempDir()
	X := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 10, 11, 12, 13})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})
	for name, m := range map[string]*mat.Dense{"x.npy": X, "y.npy": y} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, dataset.WriteNpy(f, m))
		require.NoError(t, f.Close())
	}

	model := filepath.Join(dir, "model.json")
	_, _, err := run(t, "fit", "-i", filepath.Join(dir, "x.npy"), "-l", filepath.Join(dir, "y.npy"), "-o", model)
	require.NoError(t, err)
	doc, err := readDocument(model)
	require.NoError(t, err)
	require.Equal(t, "0", doc.Columns[0].Name)
	require.Equal(t, []string{"0", "1"}, doc.Classes)
	require.Equal(t, []string{"]-Inf, 7.0]", "]7.0, Inf["}, doc.Columns[0].Intervals.Labels())

	stdout, _, err := run(t, "apply", "-m", model, "-i", filepath.Join(dir, "x.npy"), "--codes")
	require.NoError(t, err)
	require.Equal(t, "0\n0\n0\n0\n0\n1\n1\n1\n1\n", stdout)
}

func TestRenderAndPlot(t *testing.T) {
	dir := t.TempDir()
	train := writeTrainingCSV(t, dir)

	dot := filepath.Join(dir, "tree.dot")
	_, _, err := run(t, "render", "-i", train, "-t", "class", "-c", "x", "-o", dot)
	require.NoError(t, err)
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph")
	require.Contains(t, string(data), "low: 20")

	png := filepath.Join(dir, "x.png")
	_, _, err = run(t, "plot", "-i", train, "-t", "class", "-c", "x", "-o", png)
	require.NoError(t, err)
	info, err := os.Stat(png)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, _, err = run(t, "render", "-i", train, "-t", "class", "-c", "x", "-o", dot, "-f", "bmp")
	require.Error(t, err)
	_, _, err = run(t, "render", "-i", train, "-t", "class", "-c", "missing", "-o", dot)
	require.Error(t, err)
}

func TestLoggingFlags(t *testing.T) {
	dir := t.TempDir()
	train := writeTrainingCSV(t, dir)
	model := filepath.Join(dir, "model.json")

	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "cloud", "fit", "-i", train, "-t", "class", "-o", model)
	require.NoError(t, err)
	require.Contains(t, stderr, `"severity":"DEBUG"`)

	_, _, err = run(t, "--log-level", "loud", "fit", "-i", train, "-t", "class", "-o", model)
	require.Error(t, err)
	_, _, err = run(t, "--log-format", "xml", "fit", "-i", train, "-t", "class", "-o", model)
	require.Error(t, err)
}

func TestApplyErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "apply", "-m", filepath.Join(dir, "missing.json"), "-i", "x.csv")
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"columns":[{"name":"x","intervals":["]0, 1]"]}]}`), 0o644))
	_, err = readDocument(bad)
	require.Error(t, err)

	_, _, err = Apply(&Document{}, filepath.Join(dir, "x.csv"))
	require.Error(t, err)
}
