package linreg

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/MaxGalindo150/learn/internal/f32"
	"github.com/MaxGalindo150/learn/train"
)

// SyntheticData is a train.DataModule of examples drawn from a known
// linear model y = w·x + b + ε, with ε gaussian noise. Because the
// ground truth is known, a fit can be checked against it.
type SyntheticData struct {
	X [][]float32
	Y []float32

	numTrain  int
	batchSize int
}

// NewSyntheticData generates numTrain training and numVal validation
// examples from the model defined by w and b, with features drawn from
// the standard normal and noise with the given standard deviation.
func NewSyntheticData(w []float32, b float32, noise float64, numTrain, numVal, batchSize int, seed int64) (*SyntheticData, error) {
	if numTrain < 1 || numVal < 1 {
		return nil, errors.Errorf("example counts must be >= 1, got numTrain=%d numVal=%d", numTrain, numVal)
	}
	if batchSize < 1 {
		return nil, errors.Errorf("batchSize must be >= 1, got %d", batchSize)
	}

	rng := rand.New(rand.NewSource(seed))
	n := numTrain + numVal
	d := &SyntheticData{
		X:         make([][]float32, n),
		Y:         make([]float32, n),
		numTrain:  numTrain,
		batchSize: batchSize,
	}

	for i := 0; i < n; i++ {
		x := make([]float32, len(w))
		for j := range x {
			x[j] = float32(rng.NormFloat64())
		}

		d.X[i] = x
		d.Y[i] = f32.DotUnitary(w, x) + b + float32(noise*rng.NormFloat64())
	}

	return d, nil
}

// TrainBatches implements train.DataModule.
func (d *SyntheticData) TrainBatches() int {
	return numBatches(d.numTrain, d.batchSize)
}

// TrainBatch implements train.DataModule.
func (d *SyntheticData) TrainBatch(i int) train.Batch {
	return d.batch(0, d.numTrain, i)
}

// ValBatches implements train.DataModule.
func (d *SyntheticData) ValBatches() int {
	return numBatches(len(d.X)-d.numTrain, d.batchSize)
}

// ValBatch implements train.DataModule.
func (d *SyntheticData) ValBatch(i int) train.Batch {
	return d.batch(d.numTrain, len(d.X), i)
}

// batch returns the ith batch of the examples in [lo, hi).
func (d *SyntheticData) batch(lo, hi, i int) train.Batch {
	start := lo + i*d.batchSize
	end := start + d.batchSize
	if end > hi {
		end = hi
	}

	return train.Batch{X: d.X[start:end], Y: d.Y[start:end]}
}

func numBatches(n, batchSize int) int {
	if batchSize <= 0 {
		return 0
	}

	return (n + batchSize - 1) / batchSize
}
