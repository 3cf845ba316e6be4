// Package model provides the estimator base type, the interfaces shared by
// estimators and gob persistence helpers.
package model

import "io"

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save writes the fitted model to w.
	Save(w io.Writer) error

	// Load replaces the model with one read from r.
	Load(r io.Reader) error
}
