package ldbstore

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/MaxGalindo150/learn/train"
)

// RunStore keeps fit checkpoints in a LevelDB database.
// Keys are the 16 run ID bytes followed by the big-endian epoch, so a
// prefix scan over a run ID yields its checkpoints in epoch order.
type RunStore struct {
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// New opens (creating if necessary) a RunStore at the given path.
func New(path string, opts *opt.Options) (*RunStore, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening leveldb at %v", path)
	}

	return &RunStore{db: db}, nil
}

// Close implements io.Closer.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Put stores the checkpoint for the given run and epoch.
func (s *RunStore) Put(runID uuid.UUID, state *train.FitState) error {
	var buf bytes.Buffer
	if err := state.MarshalTo(&buf); err != nil {
		return errors.Wrap(err, "encoding checkpoint")
	}

	return s.db.Put(key(runID, state.Epoch), buf.Bytes(), s.wOpts)
}

// Get retrieves the checkpoint for the given run and epoch.
func (s *RunStore) Get(runID uuid.UUID, epoch int) (*train.FitState, error) {
	buf, err := s.db.Get(key(runID, epoch), s.rOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "run %v epoch %d", runID, epoch)
	}

	state, err := train.LoadFitState(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrap(err, "decoding checkpoint")
	}

	return state, nil
}

// Epochs returns the epochs checkpointed for the given run,
// in ascending order.
func (s *RunStore) Epochs(runID uuid.UUID) ([]int, error) {
	iter := s.db.NewIterator(util.BytesPrefix(runID[:]), s.rOpts)
	defer iter.Release()

	var epochs []int
	for iter.Next() {
		k := iter.Key()
		epochs = append(epochs, int(binary.BigEndian.Uint64(k[len(runID):])))
	}

	return epochs, iter.Error()
}

// Latest returns the most recent checkpoint for the given run.
func (s *RunStore) Latest(runID uuid.UUID) (*train.FitState, error) {
	epochs, err := s.Epochs(runID)
	if err != nil {
		return nil, err
	}

	if len(epochs) == 0 {
		return nil, errors.Errorf("run %v has no checkpoints", runID)
	}

	return s.Get(runID, epochs[len(epochs)-1])
}

func key(runID uuid.UUID, epoch int) []byte {
	buf := make([]byte, len(runID)+8)
	copy(buf, runID[:])
	binary.BigEndian.PutUint64(buf[len(runID):], uint64(epoch))
	return buf
}
