// Package train implements a small object-oriented training loop API:
// a Module is a learnable model, a DataModule provides minibatches,
// and a Trainer fits the one to the other.
package train

// Batch is a single minibatch of examples. X holds one feature vector
// per example and Y the corresponding targets, so len(X) == len(Y).
type Batch struct {
	X [][]float32
	Y []float32
}

// Len returns the number of examples in the batch.
func (b Batch) Len() int {
	return len(b.X)
}

// Parameter is a learnable tensor together with its accumulated gradient.
// Value and Grad always have the same length.
type Parameter struct {
	Value []float32
	Grad  []float32
}

// NewParameter returns a zero-initialized Parameter of length n.
func NewParameter(n int) *Parameter {
	return &Parameter{
		Value: make([]float32, n),
		Grad:  make([]float32, n),
	}
}

// ZeroGrad resets the accumulated gradient.
func (p *Parameter) ZeroGrad() {
	for i := range p.Grad {
		p.Grad[i] = 0
	}
}

// Module is the interface for a learnable model.
//
// TrainingStep computes the loss for the given batch and accumulates
// gradients into the module's Parameters. It does not update them;
// that is the Optimizer's job. ValidationStep computes the loss only.
type Module interface {
	// Parameters returns the module's learnable parameters.
	// The returned slice is owned by the module and must not be modified,
	// although the Parameters themselves are updated during fitting.
	Parameters() []*Parameter
	// Loss computes the scalar loss for a set of predictions yHat
	// against targets y.
	Loss(yHat, y []float32) float32
	// TrainingStep computes the loss for the batch and accumulates
	// parameter gradients.
	TrainingStep(batch Batch) (float32, error)
	// ValidationStep computes the loss for the batch without touching
	// any gradients.
	ValidationStep(batch Batch) (float32, error)
	// ConfigureOptimizer returns the optimizer to use when fitting
	// this module.
	ConfigureOptimizer() (Optimizer, error)
}

// DataModule provides minibatch access to a dataset split into
// training and validation partitions.
type DataModule interface {
	// The number of training batches per epoch.
	TrainBatches() int
	// TrainBatch returns the ith training batch.
	TrainBatch(i int) Batch
	// The number of validation batches.
	ValBatches() int
	// ValBatch returns the ith validation batch.
	ValBatch(i int) Batch
}

// Optimizer updates module parameters from their accumulated gradients.
type Optimizer interface {
	// Step applies one update to the given parameters. Gradients are
	// left untouched; the Trainer zeroes them after each step.
	Step(params []*Parameter) error
}
