// Standard attribute keys for discretization logging.
//
// Keys follow a hierarchical naming convention ("data.samples",
// "discretize.cut") so that log pipelines can filter on prefixes.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator type, e.g. "MDLPDiscretizer".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "build".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey is the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of attributes (columns).
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct target classes.
	ClassesKey = "data.classes"

	// AttributeKey is the column index of the attribute being discretized.
	AttributeKey = "data.attribute"
)

// Discretization
const (
	// BlocksKey is the number of blocks (distinct values) of an attribute.
	BlocksKey = "discretize.blocks"

	// IntervalsKey is the number of intervals produced for an attribute.
	IntervalsKey = "discretize.intervals"

	// DepthKey is the depth of a partition tree node.
	DepthKey = "discretize.depth"

	// RangeKey describes a block range as "[first,last]".
	RangeKey = "discretize.range"

	// CutKey is the block index after which a candidate cut is placed.
	CutKey = "discretize.cut"

	// EntropyKey is the class entropy of a range, in bits.
	EntropyKey = "discretize.entropy"

	// GainKey is the information gain of a candidate bi-partition.
	GainKey = "discretize.gain"

	// ThresholdKey is the minimum gain a criterion demands.
	ThresholdKey = "discretize.threshold"

	// CriterionKey names the stopping criterion.
	CriterionKey = "discretize.criterion"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey is the number of goroutines allowed to build subtrees.
	WorkersKey = "perf.workers"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the error, e.g. "InvalidSampleError".
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationFit       = "fit"
	OperationTransform = "transform"
	OperationBuild     = "build"
)
