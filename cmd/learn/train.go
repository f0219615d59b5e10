package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/MaxGalindo150/learn/config"
	"github.com/MaxGalindo150/learn/ldbstore"
	"github.com/MaxGalindo150/learn/rdbstore"
	"github.com/MaxGalindo150/learn/train"
	"github.com/MaxGalindo150/learn/train/linreg"
)

var trainConfigPath string

// runStore is the slice of the checkpoint store contract the train
// command needs; both ldbstore and rdbstore satisfy it.
type runStore interface {
	Put(runID uuid.UUID, state *train.FitState) error
	Close() error
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the linear regression example from a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(trainConfigPath)
		if err != nil {
			return err
		}

		return runTrain(cfg)
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainConfigPath, "config", "c", "experiment.yaml", "experiment config file")
}

func runTrain(cfg *config.ExperimentConfig) error {
	// Ground-truth model the synthetic data is drawn from.
	rng := rand.New(rand.NewSource(cfg.Data.Seed))
	trueW := make([]float32, cfg.Data.Features)
	for i := range trueW {
		trueW[i] = float32(rng.NormFloat64())
	}
	trueB := float32(rng.NormFloat64())

	data, err := linreg.NewSyntheticData(trueW, trueB, cfg.Data.NoiseStd,
		cfg.NumTrain(), cfg.NumVal(), cfg.Data.BatchSize, cfg.Data.Seed+1)
	if err != nil {
		return err
	}

	model, err := linreg.New(cfg.Data.Features, cfg.Trainer.LearningRate)
	if err != nil {
		return err
	}

	params := train.Params{
		MaxEpochs:    cfg.Trainer.MaxEpochs,
		GradClipNorm: cfg.Trainer.GradClipNorm,
		EvalEvery:    cfg.Trainer.EvalEvery,
	}

	if cfg.Board.Enabled {
		board := train.NewProgressBoard(cfg.Board.Every)
		board.Out = os.Stdout
		params.Board = board
	}

	runID := uuid.New()
	store, err := openRunStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		every := cfg.Checkpoint.Every
		params.AfterEpoch = func(state *train.FitState) error {
			if state.Epoch%every != 0 && state.Epoch != cfg.Trainer.MaxEpochs {
				return nil
			}

			glog.V(1).Infof("checkpointing run %v at epoch %d", runID, state.Epoch)
			return store.Put(runID, state)
		}
	}

	result, err := train.NewTrainer(params).Fit(model, data)
	if err != nil {
		return errors.Wrapf(err, "fitting %v", cfg.Name)
	}

	bold := color.New(color.Bold)
	bold.Printf("%s: run %v finished after %d epochs\n", cfg.Name, runID, result.Epochs)
	fmt.Printf("  train_loss=%.6f val_loss=%.6f\n", result.FinalTrainLoss(), result.FinalValLoss())
	fmt.Printf("  learned w=%v b=%.4f\n", model.W.Value, model.B.Value[0])
	fmt.Printf("  true    w=%v b=%.4f\n", trueW, trueB)
	return nil
}

func openRunStore(cfg *config.ExperimentConfig) (runStore, error) {
	switch cfg.Checkpoint.Backend {
	case config.BackendNone:
		return nil, nil
	case config.BackendLevelDB:
		return ldbstore.New(filepath.Join(cfg.Checkpoint.Dir, cfg.Name), nil)
	case config.BackendRocksDB:
		return rdbstore.New(rdbstore.DefaultParams(filepath.Join(cfg.Checkpoint.Dir, cfg.Name)))
	default:
		return nil, errors.Errorf("unknown checkpoint backend %q", cfg.Checkpoint.Backend)
	}
}
