// Package linreg implements linear regression as a worked example of
// the train.Module contract: analytic mean-squared-error gradients fit
// with minibatch SGD.
package linreg

import (
	"github.com/pkg/errors"

	"github.com/MaxGalindo150/learn/internal/f32"
	"github.com/MaxGalindo150/learn/train"
)

// LinearRegression models y = w·x + b and learns w, b by minimizing
// squared error over minibatches.
type LinearRegression struct {
	train.Base

	// W has one weight per input feature; B is the scalar bias.
	W *train.Parameter
	B *train.Parameter

	// LR is the SGD learning rate.
	LR float32

	hparams train.HyperParams
	scratch train.SlicePool
}

// New creates a LinearRegression over numFeatures input features.
// Weights and bias start at zero; squared-error loss is convex so the
// starting point only affects how long fitting takes.
func New(numFeatures int, lr float32) (*LinearRegression, error) {
	if numFeatures < 1 {
		return nil, errors.Errorf("numFeatures must be >= 1, got %d", numFeatures)
	}

	m := &LinearRegression{
		W:  train.NewParameter(numFeatures),
		B:  train.NewParameter(1),
		LR: lr,
	}

	hp, err := train.SaveHyperParams(struct {
		NumFeatures int
		LR          float32
	}{numFeatures, lr})
	if err != nil {
		return nil, err
	}
	m.hparams = hp

	return m, nil
}

// HyperParams returns the hyperparameters recorded at construction.
func (m *LinearRegression) HyperParams() train.HyperParams {
	return m.hparams
}

// Parameters implements train.Module.
func (m *LinearRegression) Parameters() []*train.Parameter {
	return []*train.Parameter{m.W, m.B}
}

// Forward returns the model's prediction for a single feature vector.
func (m *LinearRegression) Forward(x []float32) float32 {
	return f32.DotUnitary(m.W.Value, x) + m.B.Value[0]
}

// Loss implements train.Module: mean squared error, halved so the
// gradient is simply the residual.
func (m *LinearRegression) Loss(yHat, y []float32) float32 {
	var total float32
	for i := range yHat {
		d := yHat[i] - y[i]
		total += d * d / 2
	}

	return total / float32(len(yHat))
}

// TrainingStep implements train.Module. Gradients are analytic:
// dL/dw = mean(residual_i * x_i), dL/db = mean(residual_i).
func (m *LinearRegression) TrainingStep(batch train.Batch) (float32, error) {
	if batch.Len() == 0 {
		return 0, errors.New("empty batch")
	}

	yHat := m.scratch.Alloc(batch.Len())
	defer m.scratch.Free(yHat)

	for i, x := range batch.X {
		yHat[i] = m.Forward(x)
	}
	loss := m.Loss(yHat, batch.Y)

	invN := 1 / float32(batch.Len())
	for i, x := range batch.X {
		residual := yHat[i] - batch.Y[i]
		f32.AxpyUnitary(residual*invN, x, m.W.Grad)
		m.B.Grad[0] += residual * invN
	}

	return loss, nil
}

// ValidationStep implements train.Module.
func (m *LinearRegression) ValidationStep(batch train.Batch) (float32, error) {
	if batch.Len() == 0 {
		return 0, errors.New("empty batch")
	}

	yHat := m.scratch.Alloc(batch.Len())
	defer m.scratch.Free(yHat)

	for i, x := range batch.X {
		yHat[i] = m.Forward(x)
	}

	return m.Loss(yHat, batch.Y), nil
}

// ConfigureOptimizer implements train.Module.
func (m *LinearRegression) ConfigureOptimizer() (train.Optimizer, error) {
	return train.SGD{LR: m.LR}, nil
}
