package discretize

import "github.com/YuminosukeSato/mdlp/pkg/log"

// Option configures a Discretizer.
type Option func(*Discretizer)

// WithCriterion sets the split acceptance criterion. The default is MDLP.
func WithCriterion(c Criterion) Option {
	return func(d *Discretizer) {
		d.criterion = c
	}
}

// WithMaxDepth stops splitting below the given depth. Zero means no limit.
func WithMaxDepth(depth int) Option {
	return func(d *Discretizer) {
		d.maxDepth = depth
	}
}

// WithWorkers sets how many goroutines may build subtrees at once.
func WithWorkers(n int) Option {
	return func(d *Discretizer) {
		d.workers = n
	}
}

// WithLogger sets the logger used for split decisions.
func WithLogger(logger log.Logger) Option {
	return func(d *Discretizer) {
		d.logger = logger
	}
}
