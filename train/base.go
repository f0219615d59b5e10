package train

import (
	"github.com/pkg/errors"
)

// ErrNotImplemented is returned by Base for any step a concrete Module
// has not overridden. Callers can detect it with errors.Is.
var ErrNotImplemented = errors.New("not implemented")

// Base is a partial Module implementation intended for embedding.
// Every method that a concrete model must supply returns
// ErrNotImplemented, so a half-finished model fails loudly at the
// first fitting step rather than silently training nothing.
type Base struct{}

// TrainingStep implements Module.
func (Base) TrainingStep(Batch) (float32, error) {
	return 0, errors.Wrap(ErrNotImplemented, "TrainingStep")
}

// ValidationStep implements Module.
func (Base) ValidationStep(Batch) (float32, error) {
	return 0, errors.Wrap(ErrNotImplemented, "ValidationStep")
}

// ConfigureOptimizer implements Module.
func (Base) ConfigureOptimizer() (Optimizer, error) {
	return nil, errors.Wrap(ErrNotImplemented, "ConfigureOptimizer")
}
