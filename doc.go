// Package mdlp provides supervised, entropy-based discretization of
// numeric attributes for Go.
//
// Given real values paired with class labels, mdlp splits the real line
// into contiguous intervals that keep each interval's class distribution
// as pure as possible. Splits are found by recursive binary partitioning
// on boundary points and accepted only when they pass the Fayyad–Irani
// minimum description length (MDLP) test.
//
// # Features
//
//   - Exact MDLP stopping rule, or a fixed information gain threshold
//   - Deterministic results, with optional parallel subtree building
//   - Human-readable interval labels that round-trip through JSON
//   - scikit-learn-like Fit/Transform estimator over gonum matrices
//   - CSV and .npy input, graphviz trees and gonum/plot charts
//
// # Installation
//
//	go get github.com/YuminosukeSato/mdlp
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mdlp/discretize"
//	)
//
//	func main() {
//	    values := []float64{1, 2, 3, 4, 10, 11, 12, 13}
//	    labels := []string{"a", "a", "a", "a", "b", "b", "b", "b"}
//
//	    cat, err := discretize.Discretize(context.Background(), values, labels)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(cat.Labels()) // []-Inf, 7.0] ]7.0, Inf[]
//
//	    _, label, _ := cat.Categorize(8.5)
//	    fmt.Println(label) // ]7.0, Inf[
//	}
//
// # Packages
//
//   - discretize: block aggregation, split search, MDLP criterion,
//     partition tree and categorizers
//   - preprocessing: MDLPDiscretizer, a supervised transformer over mat.Matrix
//   - metrics: entropy and mutual information of discretized attributes
//   - dataset: CSV and .npy loading
//   - visualize: graphviz partition trees and interval plots
//   - core/model: estimator base types and persistence
//   - core/parallel: worker-bounded parallel helpers
//   - pkg/errors, pkg/log: structured errors and logging
//
// The mdlp command (cmd/mdlp) exposes fit, apply, render and plot on the
// command line.
//
// # scikit-learn Compatibility
//
//	d := preprocessing.NewMDLPDiscretizer(
//	    preprocessing.WithWorkers(-1), // Use all CPU cores
//	)
//	codes, err := d.FitTransform(X, y)
//
// # License
//
// mdlp is released under the MIT License.
package mdlp
