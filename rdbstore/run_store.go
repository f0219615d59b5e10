// Package rdbstore persists training run checkpoints in a RocksDB
// database. It is functionally equivalent to ldbstore but suits runs
// whose checkpoint volume outgrows LevelDB.
package rdbstore

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	rocksdb "github.com/tecbot/gorocksdb"

	"github.com/MaxGalindo150/learn/train"
)

// Params collects the RocksDB handles a RunStore needs.
type Params struct {
	Path         string
	Options      *rocksdb.Options
	ReadOptions  *rocksdb.ReadOptions
	WriteOptions *rocksdb.WriteOptions
}

// DefaultParams returns Params suitable for most runs, creating the
// database if it does not exist.
func DefaultParams(path string) Params {
	opts := rocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)

	return Params{
		Path:         path,
		Options:      opts,
		ReadOptions:  rocksdb.NewDefaultReadOptions(),
		WriteOptions: rocksdb.NewDefaultWriteOptions(),
	}
}

// Close releases the RocksDB option handles.
func (p Params) Close() {
	p.Options.Destroy()
	p.ReadOptions.Destroy()
	p.WriteOptions.Destroy()
}

// RunStore keeps fit checkpoints in a RocksDB database, keyed the same
// way as ldbstore.RunStore: run ID bytes then big-endian epoch.
type RunStore struct {
	params Params
	db     *rocksdb.DB
}

// New opens a RunStore with the given Params.
func New(params Params) (*RunStore, error) {
	db, err := rocksdb.OpenDb(params.Options, params.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening rocksdb at %v", params.Path)
	}

	return &RunStore{params: params, db: db}, nil
}

// Close implements io.Closer.
func (s *RunStore) Close() error {
	s.db.Close()
	s.params.Close()
	return nil
}

// Put stores the checkpoint for the given run and epoch.
func (s *RunStore) Put(runID uuid.UUID, state *train.FitState) error {
	var buf bytes.Buffer
	if err := state.MarshalTo(&buf); err != nil {
		return errors.Wrap(err, "encoding checkpoint")
	}

	return s.db.Put(s.params.WriteOptions, key(runID, state.Epoch), buf.Bytes())
}

// Get retrieves the checkpoint for the given run and epoch.
func (s *RunStore) Get(runID uuid.UUID, epoch int) (*train.FitState, error) {
	value, err := s.db.Get(s.params.ReadOptions, key(runID, epoch))
	if err != nil {
		return nil, errors.Wrapf(err, "run %v epoch %d", runID, epoch)
	}
	defer value.Free()

	if !value.Exists() {
		return nil, errors.Errorf("run %v has no checkpoint for epoch %d", runID, epoch)
	}

	state, err := train.LoadFitState(bytes.NewReader(value.Data()))
	if err != nil {
		return nil, errors.Wrap(err, "decoding checkpoint")
	}

	return state, nil
}

// Epochs returns the epochs checkpointed for the given run,
// in ascending order.
func (s *RunStore) Epochs(runID uuid.UUID) ([]int, error) {
	iter := s.db.NewIterator(s.params.ReadOptions)
	defer iter.Close()

	var epochs []int
	for iter.Seek(runID[:]); iter.Valid(); iter.Next() {
		k := iter.Key()
		if !bytes.HasPrefix(k.Data(), runID[:]) {
			k.Free()
			break
		}

		epochs = append(epochs, int(binary.BigEndian.Uint64(k.Data()[len(runID):])))
		k.Free()
	}

	return epochs, errors.Wrap(iter.Err(), "scanning checkpoints")
}

func key(runID uuid.UUID, epoch int) []byte {
	buf := make([]byte, len(runID)+8)
	copy(buf, runID[:])
	binary.BigEndian.PutUint64(buf[len(runID):], uint64(epoch))
	return buf
}
