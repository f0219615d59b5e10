package train

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// FitState is a snapshot of a fit after some epoch: the epoch losses
// plus a copy of every parameter value. It is what checkpoint stores
// persist and what RestoreParams replays into a module.
type FitState struct {
	Epoch     int
	TrainLoss float64
	// ValLoss is -1 for epochs where the validation split was not
	// evaluated.
	ValLoss float64
	Params  [][]float32
}

func (s *FitState) captureParams(m Module) {
	params := m.Parameters()
	s.Params = make([][]float32, len(params))
	for i, p := range params {
		s.Params[i] = append([]float32(nil), p.Value...)
	}
}

// RestoreParams copies the snapshot's parameter values back into the
// module. The module must have the same parameter shapes as the one
// the snapshot was taken from.
func RestoreParams(m Module, state *FitState) error {
	params := m.Parameters()
	if len(params) != len(state.Params) {
		return errors.Errorf("module has %d parameters, snapshot has %d",
			len(params), len(state.Params))
	}

	for i, p := range params {
		if len(p.Value) != len(state.Params[i]) {
			return errors.Errorf("parameter %d has length %d, snapshot has %d",
				i, len(p.Value), len(state.Params[i]))
		}

		copy(p.Value, state.Params[i])
	}

	return nil
}

// MarshalTo writes the snapshot to w in gob encoding.
func (s *FitState) MarshalTo(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(s.Epoch); err != nil {
		return err
	}

	if err := enc.Encode(s.TrainLoss); err != nil {
		return err
	}

	if err := enc.Encode(s.ValLoss); err != nil {
		return err
	}

	return enc.Encode(s.Params)
}

// LoadFitState reads a snapshot written by MarshalTo.
func LoadFitState(r io.Reader) (*FitState, error) {
	dec := gob.NewDecoder(r)
	var s FitState
	if err := dec.Decode(&s.Epoch); err != nil {
		return nil, err
	}

	if err := dec.Decode(&s.TrainLoss); err != nil {
		return nil, err
	}

	if err := dec.Decode(&s.ValLoss); err != nil {
		return nil, err
	}

	if err := dec.Decode(&s.Params); err != nil {
		return nil, err
	}

	return &s, nil
}
