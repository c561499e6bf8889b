package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ggpa/experiments/metrics"
	"ggpa/game"
	"ggpa/searcher"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Search     SearchConfig     `yaml:"search"`
	Scenario   game.Scenario    `yaml:"scenario"`
	Log        LogConfig        `yaml:"log"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// SearchConfig drives the agent used by the play command.
type SearchConfig struct {
	Iterations  int           `yaml:"iterations" validate:"gte=0"`
	Duration    time.Duration `yaml:"duration" validate:"gte=0"`
	Exploration float64       `yaml:"exploration" validate:"gte=0"`
	Verbose     bool          `yaml:"verbose"`
	Seed        uint64        `yaml:"seed"` // 0 means seeded from the clock
	Scoring     string        `yaml:"scoring" validate:"oneof=blend strict"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `yaml:"pretty"`
}

type ExperimentConfig struct {
	Name      string                `yaml:"name" validate:"required"`
	Games     int                   `yaml:"games" validate:"gt=0"` // Per agent
	OutputDir string                `yaml:"output_dir" validate:"required"`
	Seed      uint64                `yaml:"seed"`
	Agents    []metrics.AgentConfig `yaml:"agents" validate:"min=1,unique=ID,dive"`
}

func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Iterations:  searcher.DefaultIterations,
			Exploration: searcher.DefaultExploration,
			Scoring:     "blend",
		},
		Scenario: game.DefaultScenario(),
		Log: LogConfig{
			Level: "info",
		},
		Experiment: ExperimentConfig{
			Name:      "baseline",
			Games:     30,
			OutputDir: "experiments",
			Seed:      1,
			Agents: []metrics.AgentConfig{
				{ID: 0, Kind: "random"},
				{ID: 1, Kind: "mcts", Iterations: searcher.DefaultIterations, Exploration: searcher.DefaultExploration, Scoring: "blend"},
				{ID: 2, Kind: "mcts", Iterations: searcher.DefaultIterations, Exploration: searcher.DefaultExploration, Scoring: "strict"},
			},
		},
	}
}

// Load reads configuration with priority: env > file > defaults. An empty
// path skips the file.
func Load(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(&config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFromEnv(config *Config) error {
	if v := os.Getenv("GGPA_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("GGPA_ITERATIONS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GGPA_ITERATIONS: %w", err)
		}
		config.Search.Iterations = i
	}
	if v := os.Getenv("GGPA_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GGPA_SEED: %w", err)
		}
		config.Search.Seed = seed
	}
	return nil
}

// Validate checks the struct tags and the constraints that span fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Search.Iterations == 0 && c.Search.Duration == 0 {
		return errors.New("search needs iterations or a duration")
	}
	for _, agent := range c.Experiment.Agents {
		if agent.Kind == "mcts" && agent.Iterations == 0 && agent.Duration == 0 {
			return fmt.Errorf("experiment agent %d needs iterations or a duration", agent.ID)
		}
	}
	return c.Scenario.Check()
}

// ScoreFn resolves the configured scoring of the play command.
func (s SearchConfig) ScoreFn() searcher.ScoreFn {
	score, err := searcher.ScoreByName(s.Scoring)
	if err != nil {
		return searcher.BlendedScore // Unreachable after Validate
	}
	return score
}
