package preprocessing

import (
	"context"
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mdlp/core/model"
	"github.com/YuminosukeSato/mdlp/core/parallel"
	"github.com/YuminosukeSato/mdlp/discretize"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

var (
	_ model.SupervisedTransformer = (*MDLPDiscretizer)(nil)
	_ model.ParameterGetter       = (*MDLPDiscretizer)(nil)
	_ model.Persistable           = (*MDLPDiscretizer)(nil)
)

// Criterion names accepted by MDLPDiscretizer.
const (
	CriterionMDLP    = "mdlp"
	CriterionMinGain = "min_gain"
)

// MDLPDiscretizer は各特徴量を教師ありでエントロピー最小の区間に離散化する
// Transform は値を区間番号（0 始まり）に置き換える
type MDLPDiscretizer struct {
	model.BaseEstimator

	// Categorizers は列番号から学習済みの区間分割への写像
	Categorizers discretize.CategorizerSet

	// Classes は目的変数の値（出現順）。インデックスがクラスコード
	Classes []float64

	// Criterion は分割の採否基準 ("mdlp" または "min_gain")
	Criterion string

	// Threshold is the minimum information gain for CriterionMinGain.
	Threshold float64

	// MaxDepth limits the partition tree depth; 0 means unlimited.
	MaxDepth int

	// Workers bounds the goroutines used by Fit; values <= 0 use every CPU.
	Workers int

	logger log.Logger
}

// DiscretizerOption configures an MDLPDiscretizer.
type DiscretizerOption func(*MDLPDiscretizer)

// WithMinGain replaces the MDLP criterion by a fixed information gain
// threshold in bits.
func WithMinGain(threshold float64) DiscretizerOption {
	return func(d *MDLPDiscretizer) {
		d.Criterion = CriterionMinGain
		d.Threshold = threshold
	}
}

// WithMaxDepth limits the depth of each column's partition tree.
func WithMaxDepth(depth int) DiscretizerOption {
	return func(d *MDLPDiscretizer) {
		d.MaxDepth = depth
	}
}

// WithWorkers sets the number of goroutines used by Fit.
func WithWorkers(n int) DiscretizerOption {
	return func(d *MDLPDiscretizer) {
		d.Workers = n
	}
}

// WithLogger sets the logger for fit summaries and split decisions.
func WithLogger(logger log.Logger) DiscretizerOption {
	return func(d *MDLPDiscretizer) {
		d.logger = logger
	}
}

// NewMDLPDiscretizer は新しいMDLPDiscretizerを作成する
//
// 使用例:
//
//	d := preprocessing.NewMDLPDiscretizer(preprocessing.WithWorkers(4))
//	err := d.Fit(X, y)
//	codes, err := d.Transform(X)
func NewMDLPDiscretizer(opts ...DiscretizerOption) *MDLPDiscretizer {
	d := &MDLPDiscretizer{
		Criterion: CriterionMDLP,
		Workers:   1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromCategorizers returns a fitted discretizer whose column j uses
// categorizers[j], e.g. categorizers read back from a JSON document.
// Classes stays empty.
func FromCategorizers(categorizers []*discretize.Categorizer, opts ...DiscretizerOption) (*MDLPDiscretizer, error) {
	if len(categorizers) == 0 {
		return nil, errors.NewModelError("FromCategorizers", "empty model", errors.ErrEmptyData)
	}
	d := NewMDLPDiscretizer(opts...)
	d.Categorizers = make(discretize.CategorizerSet, len(categorizers))
	for j, c := range categorizers {
		if c == nil {
			return nil, errors.NewValueError("FromCategorizers", fmt.Sprintf("column %d has no categorizer", j))
		}
		d.Categorizers[j] = c
	}
	d.SetDimensions(len(categorizers), 0)
	d.SetFitted()
	return d, nil
}

func (d *MDLPDiscretizer) getLogger() log.Logger {
	if d.logger == nil {
		d.logger = log.GetLoggerWithName("preprocessing.MDLPDiscretizer")
	}
	return d.logger
}

func (d *MDLPDiscretizer) criterion() (discretize.Criterion, error) {
	switch d.Criterion {
	case CriterionMDLP, "":
		return discretize.MDLP{}, nil
	case CriterionMinGain:
		return discretize.MinGain{Threshold: d.Threshold}, nil
	default:
		return nil, errors.NewValidationError("criterion", "must be \"mdlp\" or \"min_gain\"", d.Criterion)
	}
}

// Fit は X の各列について y に基づく区間分割を学習する
//
// パラメータ:
//   - X: 訓練データ (n_samples × n_features の行列)
//   - y: クラスラベル (n_samples × 1)。値は整数でなければならない
func (d *MDLPDiscretizer) Fit(X, y mat.Matrix) error {
	return d.FitContext(context.Background(), X, y)
}

// FitContext is Fit with cancellation.
func (d *MDLPDiscretizer) FitContext(ctx context.Context, X, y mat.Matrix) error {
	const op = "MDLPDiscretizer.Fit"
	start := time.Now()

	r, c := X.Dims()
	if r == 0 {
		return errors.NewInsufficientDataError(op, 1, 0)
	}
	if c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	yr, yc := y.Dims()
	if yr != r {
		return errors.NewShapeMismatchError(op, r, yr)
	}
	if yc != 1 {
		return errors.NewDimensionError(op, 1, yc, 1)
	}

	crit, err := d.criterion()
	if err != nil {
		return err
	}

	enc := discretize.NewClassEncoder[float64]()
	classes := make([]int, r)
	for i := 0; i < r; i++ {
		v := y.At(i, 0)
		if !errors.IsIntegral(v) {
			return errors.NewInvalidSampleError(op, i, v, "class labels must be integers")
		}
		classes[i] = enc.Encode(v)
	}

	// columns are fitted concurrently; a single column parallelises its tree instead
	treeWorkers := 1
	if c == 1 {
		treeWorkers = d.Workers
	}
	builder := discretize.New(
		discretize.WithCriterion(crit),
		discretize.WithMaxDepth(d.MaxDepth),
		discretize.WithWorkers(treeWorkers),
		discretize.WithLogger(d.getLogger().With(log.ComponentKey, "discretize")),
	)

	trees := make([]*discretize.Tree, c)
	errs := make([]error, c)
	parallel.ParallelizeWithThreshold(c, 1, d.Workers, func(start, end int) {
		for j := start; j < end; j++ {
			trees[j], errs[j] = builder.Fit(ctx, mat.Col(nil, j, X), classes)
		}
	})

	categorizers := make(discretize.CategorizerSet, c)
	intervals := 0
	for j := 0; j < c; j++ {
		if errs[j] != nil {
			return errors.Wrapf(errs[j], "%s: column %d", op, j)
		}
		cat := trees[j].Categorizer()
		categorizers[j] = cat
		intervals += cat.Len()
		if cat.Len() == 1 {
			errors.Warn(errors.NewDegenerateAttributeWarning(j, degenerateReason(trees[j])))
		}
	}

	d.Categorizers = categorizers
	d.Classes = enc.Labels()
	d.SetDimensions(c, r)
	d.SetFitted()

	d.getLogger().Info("MDLPDiscretizer fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.ClassesKey, enc.Len(),
		log.IntervalsKey, intervals,
		log.CriterionKey, crit.String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

func degenerateReason(t *discretize.Tree) string {
	switch {
	case len(t.Blocks) == 1:
		return "single distinct value"
	case t.Root().Stats.Classes == 1:
		return "pure target"
	default:
		return "no split passed the criterion"
	}
}

// Transform は各値を所属する区間の番号に置き換える
func (d *MDLPDiscretizer) Transform(X mat.Matrix) (mat.Matrix, error) {
	const op = "MDLPDiscretizer.Transform"
	if err := d.RequireFitted("MDLPDiscretizer", "Transform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if c != d.NFeatures {
		return nil, errors.NewDimensionError(op, d.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		cat, err := d.Categorizers.Get(j)
		if err != nil {
			return nil, errors.NewModelError(op, "corrupted model", err)
		}
		for i := 0; i < r; i++ {
			v := X.At(i, j)
			index, _, ok := cat.Categorize(v)
			if !ok {
				return nil, errors.NewInvalidSampleError(op, i, v, fmt.Sprintf("column %d: value cannot be categorized", j))
			}
			result.Set(i, j, float64(index))
		}
	}
	d.getLogger().Debug("MDLPDiscretizer transformed",
		log.OperationKey, log.OperationTransform,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)
	return result, nil
}

// FitTransform は学習と変換を同時に行う
func (d *MDLPDiscretizer) FitTransform(X, y mat.Matrix) (mat.Matrix, error) {
	if err := d.Fit(X, y); err != nil {
		return nil, err
	}
	return d.Transform(X)
}

// InverseLabels maps interval codes produced by Transform back to their
// interval labels.
func (d *MDLPDiscretizer) InverseLabels(codes mat.Matrix) ([][]string, error) {
	const op = "MDLPDiscretizer.InverseLabels"
	if err := d.RequireFitted("MDLPDiscretizer", "InverseLabels"); err != nil {
		return nil, err
	}

	r, c := codes.Dims()
	if c != d.NFeatures {
		return nil, errors.NewDimensionError(op, d.NFeatures, c, 1)
	}

	labels := make([][]string, c)
	out := make([][]string, r)
	for j := 0; j < c; j++ {
		cat, err := d.Categorizers.Get(j)
		if err != nil {
			return nil, errors.NewModelError(op, "corrupted model", err)
		}
		labels[j] = cat.Labels()
	}
	for i := 0; i < r; i++ {
		out[i] = make([]string, c)
		for j := 0; j < c; j++ {
			code := codes.At(i, j)
			if !errors.IsIntegral(code) || code < 0 || int(code) >= len(labels[j]) {
				return nil, errors.NewValueError(op, fmt.Sprintf("row %d column %d: %v is not an interval code", i, j, code))
			}
			out[i][j] = labels[j][int(code)]
		}
	}
	return out, nil
}

// Intervals returns the fitted intervals of column j.
func (d *MDLPDiscretizer) Intervals(j int) ([]discretize.Interval, error) {
	if err := d.RequireFitted("MDLPDiscretizer", "Intervals"); err != nil {
		return nil, err
	}
	cat, err := d.Categorizers.Get(j)
	if err != nil {
		return nil, err
	}
	return cat.Intervals(), nil
}

// Save writes the fitted discretizer with gob.
func (d *MDLPDiscretizer) Save(w io.Writer) error {
	return model.SaveModelToWriter(d, w)
}

// Load reads a discretizer written by Save.
func (d *MDLPDiscretizer) Load(r io.Reader) error {
	var loaded MDLPDiscretizer
	if err := model.LoadModelFromReader(&loaded, r); err != nil {
		return err
	}
	loaded.logger = d.logger
	*d = loaded
	return nil
}

// GetParams は離散化器のパラメータを取得する
func (d *MDLPDiscretizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"criterion": d.Criterion,
		"threshold": d.Threshold,
		"max_depth": d.MaxDepth,
		"workers":   d.Workers,
	}
}

// String は離散化器の文字列表現を返す
func (d *MDLPDiscretizer) String() string {
	if !d.IsFitted() {
		return fmt.Sprintf("MDLPDiscretizer(criterion=%s, max_depth=%d)", d.Criterion, d.MaxDepth)
	}
	return fmt.Sprintf("MDLPDiscretizer(criterion=%s, max_depth=%d, n_features=%d, n_classes=%d)",
		d.Criterion, d.MaxDepth, d.NFeatures, len(d.Classes))
}
