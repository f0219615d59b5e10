package train

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/MaxGalindo150/learn/internal/f32"
)

// Params are the configuration options for a Trainer. The zero value is
// not valid; MaxEpochs must be at least 1.
type Params struct {
	// MaxEpochs is the number of passes over the training data.
	MaxEpochs int
	// GradClipNorm, if > 0, rescales gradients whose global L2 norm
	// exceeds it before each optimizer step.
	GradClipNorm float32
	// EvalEvery controls how often (in epochs) the validation split is
	// evaluated. Zero means every epoch.
	EvalEvery int
	// Board, if non-nil, receives train_loss and val_loss points.
	Board *ProgressBoard
	// AfterEpoch, if non-nil, is called with a snapshot of the fit after
	// each epoch. Returning an error aborts the fit. This is the hook
	// used for checkpointing.
	AfterEpoch func(state *FitState) error
}

// FitResult summarizes a completed fit.
type FitResult struct {
	Epochs      int
	TrainLosses []float64 // mean training loss per epoch
	ValLosses   []float64 // mean validation loss per evaluated epoch
}

// FinalTrainLoss returns the mean training loss of the last epoch.
func (r *FitResult) FinalTrainLoss() float64 {
	return r.TrainLosses[len(r.TrainLosses)-1]
}

// FinalValLoss returns the most recent validation loss.
func (r *FitResult) FinalValLoss() float64 {
	return r.ValLosses[len(r.ValLosses)-1]
}

// Trainer drives the fitting loop: for each epoch it runs every
// training batch through the module, clips and applies gradients, and
// periodically evaluates the validation split.
type Trainer struct {
	params Params

	step int // global training step, drives board x-coordinates
}

// NewTrainer creates a Trainer with the given Params.
func NewTrainer(params Params) *Trainer {
	return &Trainer{params: params}
}

// Fit trains the module on the given data until MaxEpochs is reached
// or a step fails.
func (t *Trainer) Fit(m Module, data DataModule) (*FitResult, error) {
	if t.params.MaxEpochs < 1 {
		return nil, errors.Errorf("MaxEpochs must be >= 1, got %d", t.params.MaxEpochs)
	}

	opt, err := m.ConfigureOptimizer()
	if err != nil {
		return nil, errors.Wrap(err, "configuring optimizer")
	}

	result := &FitResult{}
	for epoch := 1; epoch <= t.params.MaxEpochs; epoch++ {
		trainLoss, err := t.fitEpoch(m, data, opt)
		if err != nil {
			return nil, errors.Wrapf(err, "epoch %d", epoch)
		}

		result.Epochs = epoch
		result.TrainLosses = append(result.TrainLosses, trainLoss)

		state := &FitState{Epoch: epoch, TrainLoss: trainLoss, ValLoss: -1}
		if t.shouldEval(epoch) {
			valLoss, err := t.evaluate(m, data)
			if err != nil {
				return nil, errors.Wrapf(err, "epoch %d: validation", epoch)
			}

			result.ValLosses = append(result.ValLosses, valLoss)
			state.ValLoss = valLoss
			if t.params.Board != nil {
				// Same x-axis as train_loss so the series line up.
				t.params.Board.Record("val_loss", float64(t.step), valLoss)
			}

			glog.V(1).Infof("epoch %d: train_loss=%.6f val_loss=%.6f", epoch, trainLoss, valLoss)
		} else {
			glog.V(1).Infof("epoch %d: train_loss=%.6f", epoch, trainLoss)
		}

		if t.params.AfterEpoch != nil {
			state.captureParams(m)
			if err := t.params.AfterEpoch(state); err != nil {
				return nil, errors.Wrapf(err, "epoch %d: after-epoch hook", epoch)
			}
		}
	}

	return result, nil
}

func (t *Trainer) fitEpoch(m Module, data DataModule, opt Optimizer) (float64, error) {
	n := data.TrainBatches()
	if n == 0 {
		return 0, errors.New("data module has no training batches")
	}

	var epochLoss float64
	for i := 0; i < n; i++ {
		loss, err := m.TrainingStep(data.TrainBatch(i))
		if err != nil {
			return 0, errors.Wrapf(err, "training step %d", i)
		}

		if t.params.GradClipNorm > 0 {
			clipGradients(m.Parameters(), t.params.GradClipNorm)
		}

		if err := opt.Step(m.Parameters()); err != nil {
			return 0, errors.Wrapf(err, "optimizer step %d", i)
		}

		for _, p := range m.Parameters() {
			p.ZeroGrad()
		}

		t.step++
		epochLoss += float64(loss)
		if t.params.Board != nil {
			t.params.Board.Record("train_loss", float64(t.step), float64(loss))
		}
	}

	return epochLoss / float64(n), nil
}

func (t *Trainer) evaluate(m Module, data DataModule) (float64, error) {
	n := data.ValBatches()
	if n == 0 {
		return 0, errors.New("data module has no validation batches")
	}

	var total float64
	for i := 0; i < n; i++ {
		loss, err := m.ValidationStep(data.ValBatch(i))
		if err != nil {
			return 0, errors.Wrapf(err, "validation step %d", i)
		}

		total += float64(loss)
	}

	return total / float64(n), nil
}

func (t *Trainer) shouldEval(epoch int) bool {
	every := t.params.EvalEvery
	if every <= 0 {
		every = 1
	}

	return epoch%every == 0 || epoch == t.params.MaxEpochs
}

// clipGradients rescales all gradients in place if their global L2 norm
// exceeds maxNorm.
func clipGradients(params []*Parameter, maxNorm float32) {
	var ss float64
	for _, p := range params {
		n := f32.Norm2(p.Grad)
		ss += float64(n) * float64(n)
	}

	norm := float32(math.Sqrt(ss))
	if norm <= maxNorm {
		return
	}

	scale := maxNorm / norm
	for _, p := range params {
		f32.ScalUnitary(scale, p.Grad)
	}
}
