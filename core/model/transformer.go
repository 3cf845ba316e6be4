package model

import "gonum.org/v1/gonum/mat"

// SupervisedTransformer はラベルを使って学習するデータ変換のインターフェース
type SupervisedTransformer interface {
	// Fit は変換に必要なパラメータを X と目的変数 y から学習する
	Fit(X, y mat.Matrix) error

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X, y mat.Matrix) (mat.Matrix, error)
}
