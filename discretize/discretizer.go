package discretize

import (
	"context"
	"fmt"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

// Discretizer builds partition trees. A Discretizer holds configuration
// only and may be shared between goroutines.
type Discretizer struct {
	criterion Criterion
	maxDepth  int
	workers   int
	logger    log.Logger
}

// New returns a Discretizer using MDLP, no depth limit and one worker.
func New(opts ...Option) *Discretizer {
	d := &Discretizer{
		criterion: MDLP{},
		workers:   1,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.criterion == nil {
		d.criterion = MDLP{}
	}
	if d.logger == nil {
		d.logger = log.GetLoggerWithName("discretize")
	}
	return d
}

// Criterion returns the configured criterion.
func (d *Discretizer) Criterion() Criterion { return d.criterion }

// Workers returns the configured number of workers.
func (d *Discretizer) Workers() int { return d.workers }

// MaxDepth returns the configured depth limit.
func (d *Discretizer) MaxDepth() int { return d.maxDepth }

// Fit validates the samples, aggregates them into blocks and builds the
// partition tree. classes holds non-negative class codes paired with
// values by position. Codes need not be dense: they are compacted by rank
// before aggregation and Tree.ClassCodes maps them back.
//
// Errors:
//   - ShapeMismatchError if the lengths differ
//   - InsufficientDataError if there are no samples
//   - InvalidSampleError for a NaN or infinite value or a negative code
func (d *Discretizer) Fit(ctx context.Context, values []float64, classes []int) (*Tree, error) {
	const op = "Discretizer.Fit"

	if len(values) != len(classes) {
		return nil, errors.NewShapeMismatchError(op, len(values), len(classes))
	}
	if len(values) == 0 {
		return nil, errors.NewInsufficientDataError(op, 1, 0)
	}
	if err := errors.CheckFinite(op, values); err != nil {
		return nil, err
	}
	if err := errors.CheckClassCodes(op, classes, 0); err != nil {
		return nil, err
	}

	dense, distinct := CompactCodes(classes)
	nClasses := len(distinct)
	blocks := AggregateBlocks(values, dense, nClasses)

	tree, err := d.Build(ctx, blocks, nClasses)
	if err != nil {
		return nil, err
	}
	tree.ClassCodes = distinct

	d.logger.Debug("partition tree built",
		log.OperationKey, log.OperationBuild,
		log.SamplesKey, len(values),
		log.BlocksKey, len(blocks),
		log.ClassesKey, nClasses,
		log.IntervalsKey, len(tree.Leaves()),
		log.CriterionKey, d.criterion.String(),
	)
	return tree, nil
}

// Discretize encodes labels, fits a Discretizer configured by opts and
// returns the categorizer of the resulting tree.
func Discretize[L comparable](ctx context.Context, values []float64, labels []L, opts ...Option) (*Categorizer, error) {
	if len(values) != len(labels) {
		return nil, errors.NewShapeMismatchError("Discretize", len(values), len(labels))
	}

	enc := NewClassEncoder[L]()
	tree, err := New(opts...).Fit(ctx, values, enc.EncodeAll(labels))
	if err != nil {
		return nil, err
	}
	return tree.Categorizer(), nil
}

func (d *Discretizer) String() string {
	return fmt.Sprintf("Discretizer(criterion=%s, max_depth=%d, workers=%d)", d.criterion, d.maxDepth, d.workers)
}
