package train

import (
	"github.com/pkg/errors"

	"github.com/MaxGalindo150/learn/internal/f32"
)

// SGD is plain minibatch stochastic gradient descent:
// each Step moves every parameter by -LR times its accumulated gradient.
type SGD struct {
	// LR is the learning rate. Must be > 0.
	LR float32
}

// Step implements Optimizer.
func (s SGD) Step(params []*Parameter) error {
	if s.LR <= 0 {
		return errors.Errorf("learning rate must be positive, got %v", s.LR)
	}

	for _, p := range params {
		if len(p.Grad) != len(p.Value) {
			return errors.Errorf("parameter gradient has length %d, value has length %d",
				len(p.Grad), len(p.Value))
		}

		f32.AxpyUnitary(-s.LR, p.Grad, p.Value)
	}

	return nil
}
