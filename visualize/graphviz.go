// Package visualize draws partition trees with graphviz and fitted
// intervals with gonum/plot.
package visualize

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// ParseFormat maps "dot", "svg", "png" or "jpg" to a graphviz format.
func ParseFormat(name string) (graphviz.Format, error) {
	switch strings.ToLower(name) {
	case "dot", "gv":
		return graphviz.XDOT, nil
	case "svg":
		return graphviz.SVG, nil
	case "png":
		return graphviz.PNG, nil
	case "jpg", "jpeg":
		return graphviz.JPG, nil
	}
	return "", errors.NewValidationError("format", "must be one of dot, svg, png, jpg", name)
}

// TreeGraph builds the graphviz graph of tree: inner nodes show the cut
// and its gain, leaves are boxes labelled with their interval. classNames
// names the class codes in the leaf distributions; nil prints the codes.
// The caller closes both returned values.
func TreeGraph(tree *discretize.Tree, classNames []string) (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		gv.Close()
		return nil, nil, errors.Wrap(err, "error creating graph")
	}

	d := &drawer{
		graph:     graph,
		tree:      tree,
		acc:       discretize.NewAccumulator(tree.Blocks, tree.Classes),
		intervals: tree.Categorizer().Intervals(),
		names:     classNames,
	}
	if err := d.draw(0, nil); err != nil {
		graph.Close()
		gv.Close()
		return nil, nil, err
	}
	return gv, graph, nil
}

// RenderTree writes tree to w in the given format.
func RenderTree(w io.Writer, tree *discretize.Tree, classNames []string, format graphviz.Format) (err error) {
	defer errors.Recover(&err, "RenderTree")

	gv, graph, err := TreeGraph(tree, classNames)
	if err != nil {
		return err
	}
	defer gv.Close()
	defer graph.Close()

	if err := gv.Render(graph, format, w); err != nil {
		return errors.Wrapf(err, "error rendering tree as %s", format)
	}
	return nil
}

type drawer struct {
	graph     *cgraph.Graph
	tree      *discretize.Tree
	acc       *discretize.Accumulator
	intervals []discretize.Interval
	names     []string
	leaf      int
}

func (d *drawer) draw(index int, parent *cgraph.Node) error {
	node := d.tree.Nodes[index]
	current, err := d.graph.CreateNode(fmt.Sprint(index))
	if err != nil {
		return errors.Wrapf(err, "error creating node %d", index)
	}
	if parent != nil {
		if _, err := d.graph.CreateEdge("", parent, current); err != nil {
			return errors.Wrapf(err, "error creating edge to node %d", index)
		}
	}

	if node.IsLeaf() {
		current.Set("label", d.leafLabel(node))
		current.Set("shape", "box")
		return nil
	}

	current.Set("label", fmt.Sprintf("x <= %s\\nn=%d H=%.3f\\ngain=%.3f",
		discretize.FormatBound(d.tree.Bound(node.Cut)), node.Stats.Count, node.Stats.Entropy, node.Gain))
	if err := d.draw(node.Left, current); err != nil {
		return err
	}
	return d.draw(node.Right, current)
}

// leafLabel consumes intervals in order; draw visits leaves left to right.
func (d *drawer) leafLabel(node discretize.Node) string {
	label := d.intervals[d.leaf].Label
	d.leaf++

	counts := make([]string, 0, d.tree.Classes)
	for c, n := range d.acc.ClassCounts(node.Range) {
		if n == 0 {
			continue
		}
		code := d.tree.ClassCode(c)
		name := fmt.Sprint(code)
		if code < len(d.names) {
			name = d.names[code]
		}
		counts = append(counts, fmt.Sprintf("%s: %d", name, n))
	}
	return fmt.Sprintf("%s\\n%s", label, strings.Join(counts, ", "))
}
