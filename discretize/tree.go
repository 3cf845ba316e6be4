package discretize

import (
	"context"
	"fmt"

	"github.com/YuminosukeSato/mdlp/core/parallel"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

// Node is one node of a partition tree. Children are indices into
// Tree.Nodes; Left and Right are both -1 for a leaf.
type Node struct {
	Range Range
	Stats RangeStats
	Depth int

	Left, Right int

	// Cut and Gain describe the accepted split of an inner node.
	Cut  int
	Gain float64
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return n.Left < 0 }

// Tree is a partition tree stored in pre-order: the root is Nodes[0] and
// every left subtree precedes its right sibling, so leaves appear in
// increasing value order. A Tree is not modified after Build.
type Tree struct {
	Blocks  []Block
	Classes int
	Nodes   []Node

	// ClassCodes[c] is the caller's code for class c of the block counts.
	// Nil means the codes were used as given.
	ClassCodes []int
}

// ClassCode returns the caller's code of class c.
func (t *Tree) ClassCode(c int) int {
	if t.ClassCodes == nil {
		return c
	}
	return t.ClassCodes[c]
}

// Root returns the node spanning every block.
func (t *Tree) Root() Node { return t.Nodes[0] }

// Leaves returns the terminal nodes from the lowest values to the highest.
func (t *Tree) Leaves() []Node {
	var leaves []Node
	for _, n := range t.Nodes {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// Depth returns the depth of the deepest node; a single leaf has depth 0.
func (t *Tree) Depth() int {
	depth := 0
	for _, n := range t.Nodes {
		depth = max(depth, n.Depth)
	}
	return depth
}

// Cuts returns the finite interval bounds of the tree's categorizer in
// increasing order.
func (t *Tree) Cuts() []float64 {
	return t.Categorizer().Cuts()
}

// builder holds what every recursive call reads. Nothing in it is written
// after construction.
type builder struct {
	acc       *Accumulator
	criterion Criterion
	maxDepth  int
	slots     parallel.Slots
	logger    log.Logger
}

// Build grows the partition tree over blocks, which must be strictly
// increasing in value with class counts over nClasses codes. It returns
// ctx.Err() if ctx is cancelled before the tree is complete.
func (d *Discretizer) Build(ctx context.Context, blocks []Block, nClasses int) (*Tree, error) {
	b := &builder{
		acc:       NewAccumulator(blocks, nClasses),
		criterion: d.criterion,
		maxDepth:  d.maxDepth,
		slots:     parallel.NewSlots(d.workers),
		logger:    d.logger,
	}

	nodes, err := b.build(ctx, Range{First: 0, Last: len(blocks) - 1}, 0)
	if err != nil {
		return nil, err
	}
	return &Tree{Blocks: blocks, Classes: nClasses, Nodes: nodes}, nil
}

// build returns the subtree over r in pre-order with indices local to the
// returned slice.
func (b *builder) build(ctx context.Context, r Range, depth int) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := b.acc.Stats(r)
	node := Node{Range: r, Stats: stats, Depth: depth, Left: -1, Right: -1, Cut: -1}
	if stats.Classes <= 1 || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return []Node{node}, nil
	}

	split, ok := b.acc.BestSplit(r)
	if !ok {
		return []Node{node}, nil
	}

	decision, err := b.criterion.Accept(stats, split)
	if err != nil {
		return nil, err
	}
	if b.logger.Enabled(ctx, log.LevelDebug) {
		msg := "split rejected"
		if decision.Accept {
			msg = "split accepted"
		}
		b.logger.Debug(msg,
			log.RangeKey, r.String(),
			log.CutKey, split.Cut,
			log.EntropyKey, split.Entropy,
			log.GainKey, decision.Gain,
			log.ThresholdKey, decision.Threshold,
			log.DepthKey, depth,
		)
	}
	if !decision.Accept {
		return []Node{node}, nil
	}

	var left, right []Node
	err = parallel.Join(ctx, b.slots,
		func() (err error) {
			left, err = b.build(ctx, split.Left, depth+1)
			return err
		},
		func() (err error) {
			right, err = b.build(ctx, split.Right, depth+1)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	node.Cut = split.Cut
	node.Gain = decision.Gain
	node.Left = 1
	node.Right = 1 + len(left)

	nodes := make([]Node, 0, 1+len(left)+len(right))
	nodes = append(nodes, node)
	nodes = appendShifted(nodes, left, node.Left)
	nodes = appendShifted(nodes, right, node.Right)
	return nodes, nil
}

func appendShifted(dst, src []Node, offset int) []Node {
	for _, n := range src {
		if !n.IsLeaf() {
			n.Left += offset
			n.Right += offset
		}
		dst = append(dst, n)
	}
	return dst
}

func (n Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("leaf%v n=%d H=%.4f", n.Range, n.Stats.Count, n.Stats.Entropy)
	}
	return fmt.Sprintf("split%v at %d gain=%.4f", n.Range, n.Cut, n.Gain)
}
