// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// Errors carry a cockroachdb stack trace and can be marshalled into zerolog
// events for structured logging.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("mdlp-Warning: %v\n", w)
	}
	// set by pkg/log to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler.
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog sink for warnings. It takes
// precedence over the handler set with SetWarningHandler. Passing nil
// restores the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// otherwise through the warning handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DegenerateAttributeWarning is raised when an attribute collapses into a
// single interval, e.g. because it holds one distinct value or the target
// is pure. The attribute still gets a valid categorizer.
type DegenerateAttributeWarning struct {
	Attribute int
	Reason    string
}

func (w *DegenerateAttributeWarning) Error() string {
	return fmt.Sprintf("attribute %d yields a single interval: %s", w.Attribute, w.Reason)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *DegenerateAttributeWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("attribute", w.Attribute).
		Str("reason", w.Reason).
		Str("type", "DegenerateAttributeWarning")
}

// NewDegenerateAttributeWarning は新しいDegenerateAttributeWarningを作成します。
func NewDegenerateAttributeWarning(attribute int, reason string) *DegenerateAttributeWarning {
	return &DegenerateAttributeWarning{Attribute: attribute, Reason: reason}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InsufficientDataError reports that an operation received fewer samples
// than it needs. Discretization is undefined without observations.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("mdlp: %s: insufficient data: need at least %d samples, got %d", e.Op, e.Need, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("need", e.Need).
		Int("got", e.Got).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError returns an InsufficientDataError with a stack trace.
func NewInsufficientDataError(op string, need, got int) error {
	return errors.WithStack(&InsufficientDataError{Op: op, Need: need, Got: got})
}

// InvalidSampleError reports a training sample that cannot be placed on
// the real line (NaN or an infinity) or carries an invalid class code.
type InvalidSampleError struct {
	Op     string
	Index  int
	Value  float64
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("mdlp: %s: invalid sample at index %d (value %v): %s", e.Op, e.Index, e.Value, e.Reason)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *InvalidSampleError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Float64("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "InvalidSampleError")
}

// NewInvalidSampleError returns an InvalidSampleError with a stack trace.
func NewInvalidSampleError(op string, index int, value float64, reason string) error {
	return errors.WithStack(&InvalidSampleError{Op: op, Index: index, Value: value, Reason: reason})
}

// ShapeMismatchError reports paired inputs of different lengths, such as
// attribute values and class labels.
type ShapeMismatchError struct {
	Op     string
	Values int
	Labels int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("mdlp: %s: shape mismatch: %d values but %d labels", e.Op, e.Values, e.Labels)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("values", e.Values).
		Int("labels", e.Labels).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError returns a ShapeMismatchError with a stack trace.
func NewShapeMismatchError(op string, values, labels int) error {
	return errors.WithStack(&ShapeMismatchError{Op: op, Values: values, Labels: labels})
}

// NotFittedError はモデルが未学習の状態で `Transform` などを呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("mdlp: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mdlp: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mdlp: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mdlp: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError wraps a failure inside a model operation with its kind.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mdlp: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mdlp: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
