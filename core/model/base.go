package model

import (
	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのモデルの基底となる構造体
//
// Fields are exported so that gob persistence keeps the fitted state.
type BaseEstimator struct {
	State EstimatorState

	// NFeatures and NSamples record the shape seen by the last Fit.
	NFeatures int
	NSamples  int
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.State == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.State = Fitted
}

// SetDimensions records the training shape.
func (e *BaseEstimator) SetDimensions(nFeatures, nSamples int) {
	e.NFeatures = nFeatures
	e.NSamples = nSamples
}

// Dimensions returns the training shape.
func (e *BaseEstimator) Dimensions() (nFeatures, nSamples int) {
	return e.NFeatures, e.NSamples
}

// RequireFitted returns a NotFittedError naming model and method when the
// estimator has not been fitted.
func (e *BaseEstimator) RequireFitted(model, method string) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(model, method)
	}
	return nil
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.State = NotFitted
	e.NFeatures = 0
	e.NSamples = 0
}
