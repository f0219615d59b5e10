package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
name: linreg-demo
trainer:
  max_epochs: 20
  learning_rate: 0.05
  grad_clip_norm: 1.0
data:
  samples: 500
  features: 3
  batch_size: 16
  noise_std: 0.1
board:
  enabled: true
  every: 5
checkpoint:
  backend: leveldb
  dir: /tmp/runs
  every: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "linreg-demo", cfg.Name)
	assert.Equal(t, 20, cfg.Trainer.MaxEpochs)
	assert.Equal(t, float32(0.05), cfg.Trainer.LearningRate)
	assert.Equal(t, float32(1.0), cfg.Trainer.GradClipNorm)
	assert.Equal(t, 3, cfg.Data.Features)
	assert.True(t, cfg.Board.Enabled)
	assert.Equal(t, BackendLevelDB, cfg.Checkpoint.Backend)
	assert.Equal(t, 2, cfg.Checkpoint.Every)

	// Defaults fill whatever the file leaves unset.
	assert.Equal(t, 1, cfg.Trainer.EvalEvery)
	assert.Equal(t, 0.2, cfg.Data.ValSplit)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "experiment", cfg.Name)
	assert.Equal(t, 10, cfg.Trainer.MaxEpochs)
	assert.Equal(t, float32(0.03), cfg.Trainer.LearningRate)
	assert.Equal(t, 1000, cfg.Data.Samples)
	assert.Equal(t, 32, cfg.Data.BatchSize)
	assert.Equal(t, BackendNone, cfg.Checkpoint.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "trainer: [not a map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*ExperimentConfig)
		wantFail bool
	}{
		{"defaults ok", func(*ExperimentConfig) {}, false},
		{"negative epochs", func(c *ExperimentConfig) { c.Trainer.MaxEpochs = -1 }, true},
		{"negative lr", func(c *ExperimentConfig) { c.Trainer.LearningRate = -0.1 }, true},
		{"negative eval_every", func(c *ExperimentConfig) { c.Trainer.EvalEvery = -1 }, true},
		{"negative samples", func(c *ExperimentConfig) { c.Data.Samples = -5 }, true},
		{"val split too big", func(c *ExperimentConfig) { c.Data.ValSplit = 1.5 }, true},
		{"zero batch", func(c *ExperimentConfig) { c.Data.BatchSize = -1 }, true},
		{"unknown backend", func(c *ExperimentConfig) { c.Checkpoint.Backend = "postgres" }, true},
		{"negative checkpoint every", func(c *ExperimentConfig) { c.Checkpoint.Every = -2 }, true},
		{"backend without dir", func(c *ExperimentConfig) { c.Checkpoint.Backend = BackendRocksDB }, true},
		{"backend with dir", func(c *ExperimentConfig) {
			c.Checkpoint.Backend = BackendRocksDB
			c.Checkpoint.Dir = "/tmp/runs"
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg ExperimentConfig
			cfg.ApplyDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantFail {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitCounts(t *testing.T) {
	var cfg ExperimentConfig
	cfg.ApplyDefaults()
	cfg.Data.Samples = 100
	cfg.Data.ValSplit = 0.25

	assert.Equal(t, 25, cfg.NumVal())
	assert.Equal(t, 75, cfg.NumTrain())
}
