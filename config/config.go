// Package config loads experiment configuration from YAML files.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Checkpoint backends.
const (
	BackendNone    = ""
	BackendLevelDB = "leveldb"
	BackendRocksDB = "rocksdb"
)

// ExperimentConfig describes one training experiment: the trainer
// settings, the synthetic data to generate, progress board rendering,
// and optional checkpointing.
type ExperimentConfig struct {
	Name string `yaml:"name"`

	Trainer struct {
		MaxEpochs    int     `yaml:"max_epochs"`
		LearningRate float32 `yaml:"learning_rate"`
		GradClipNorm float32 `yaml:"grad_clip_norm"`
		EvalEvery    int     `yaml:"eval_every"`
	} `yaml:"trainer"`

	Data struct {
		Samples   int     `yaml:"samples"`
		ValSplit  float64 `yaml:"val_split"`
		Features  int     `yaml:"features"`
		BatchSize int     `yaml:"batch_size"`
		NoiseStd  float64 `yaml:"noise_std"`
		Seed      int64   `yaml:"seed"`
	} `yaml:"data"`

	Board struct {
		Enabled bool `yaml:"enabled"`
		Every   int  `yaml:"every"`
	} `yaml:"board"`

	Checkpoint struct {
		Backend string `yaml:"backend"`
		Dir     string `yaml:"dir"`
		Every   int    `yaml:"every"`
	} `yaml:"checkpoint"`
}

// Load reads and validates the experiment config at path, filling in
// defaults for unset fields.
func Load(path string) (*ExperimentConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %v", path)
	}

	var cfg ExperimentConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %v", path)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %v", path)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with usable defaults.
func (c *ExperimentConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.Trainer.MaxEpochs == 0 {
		c.Trainer.MaxEpochs = 10
	}
	if c.Trainer.LearningRate == 0 {
		c.Trainer.LearningRate = 0.03
	}
	if c.Trainer.EvalEvery == 0 {
		c.Trainer.EvalEvery = 1
	}
	if c.Data.Samples == 0 {
		c.Data.Samples = 1000
	}
	if c.Data.ValSplit == 0 {
		c.Data.ValSplit = 0.2
	}
	if c.Data.Features == 0 {
		c.Data.Features = 2
	}
	if c.Data.BatchSize == 0 {
		c.Data.BatchSize = 32
	}
	if c.Data.NoiseStd == 0 {
		c.Data.NoiseStd = 0.01
	}
	if c.Data.Seed == 0 {
		c.Data.Seed = 1
	}
	if c.Board.Every == 0 {
		c.Board.Every = 10
	}
	if c.Checkpoint.Every == 0 {
		c.Checkpoint.Every = 1
	}
}

// Validate reports the first configuration error found, if any.
func (c *ExperimentConfig) Validate() error {
	if c.Trainer.MaxEpochs < 1 {
		return errors.Errorf("trainer.max_epochs must be >= 1, got %d", c.Trainer.MaxEpochs)
	}
	if c.Trainer.LearningRate <= 0 {
		return errors.Errorf("trainer.learning_rate must be > 0, got %v", c.Trainer.LearningRate)
	}
	if c.Trainer.EvalEvery < 0 {
		return errors.Errorf("trainer.eval_every must be >= 0, got %d", c.Trainer.EvalEvery)
	}
	if c.Data.Samples < 1 {
		return errors.Errorf("data.samples must be >= 1, got %d", c.Data.Samples)
	}
	if c.Data.ValSplit <= 0 || c.Data.ValSplit >= 1 {
		return errors.Errorf("data.val_split must be in (0, 1), got %v", c.Data.ValSplit)
	}
	if c.Data.BatchSize < 1 {
		return errors.Errorf("data.batch_size must be >= 1, got %d", c.Data.BatchSize)
	}

	switch c.Checkpoint.Backend {
	case BackendNone, BackendLevelDB, BackendRocksDB:
	default:
		return errors.Errorf("checkpoint.backend must be %q or %q, got %q",
			BackendLevelDB, BackendRocksDB, c.Checkpoint.Backend)
	}
	if c.Checkpoint.Backend != BackendNone && c.Checkpoint.Dir == "" {
		return errors.New("checkpoint.dir is required when a checkpoint backend is set")
	}
	if c.Checkpoint.Every < 0 {
		return errors.Errorf("checkpoint.every must be >= 0, got %d", c.Checkpoint.Every)
	}

	return nil
}

// NumVal returns the number of validation examples implied by the
// sample count and split.
func (c *ExperimentConfig) NumVal() int {
	return int(float64(c.Data.Samples) * c.Data.ValSplit)
}

// NumTrain returns the number of training examples.
func (c *ExperimentConfig) NumTrain() int {
	return c.Data.Samples - c.NumVal()
}
