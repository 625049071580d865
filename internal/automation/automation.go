package automation

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/step"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Values, when set, replace the generated array.
type ScenarioStep struct {
	Algorithm string  `yaml:"algorithm"`
	Preset    string  `yaml:"preset"`
	Size      int     `yaml:"size"`
	Shape     string  `yaml:"shape"`
	Seed      int64   `yaml:"seed"`
	Values    []int   `yaml:"values"`
	Speed     float64 `yaml:"speed"`
	Paced     bool    `yaml:"paced"`
}

// StepResult reports one finished run
type StepResult struct {
	Algorithm string
	Size      int
	Sorted    bool
	Metrics   map[string]float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// RunScenario executes all steps in order, each in a fresh session
func RunScenario(ctx context.Context, scenario *Scenario, logger *log.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, st := range scenario.Steps {
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "algorithm", st.Algorithm)

		res, err := runStep(ctx, st, logger)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, st ScenarioStep, logger *log.Logger) (StepResult, error) {
	cfg := config.DefaultConfig()
	if st.Preset != "" {
		cfg = config.GetPreset(st.Preset)
		if cfg == nil {
			return StepResult{}, fmt.Errorf("unknown preset: %s (available: %v)", st.Preset, config.ListPresets())
		}
	}
	if st.Algorithm != "" {
		cfg.Algorithm = st.Algorithm
	}
	if st.Size > 0 {
		cfg.Array.Size = st.Size
	}
	if st.Shape != "" {
		cfg.Array.Shape = st.Shape
	}
	if st.Seed != 0 {
		cfg.Array.Seed = st.Seed
	}
	if st.Speed > 0 {
		cfg.Speed = st.Speed
	}
	if err := cfg.Validate(); err != nil {
		return StepResult{}, err
	}

	spec, err := cfg.ArraySpec()
	if err != nil {
		return StepResult{}, err
	}

	sleep := step.NoSleep
	if st.Paced {
		sleep = step.Sleep
	}
	tally := metrics.Default()
	tally.Add(metrics.NewAnimationTime(cfg.BaseDelay(), cfg.Speed))

	s := session.New(
		session.WithSpec(spec),
		session.WithGenerator(array.NewGenerator(cfg.GeneratorSeed())),
		session.WithSpeed(cfg.Speed),
		session.WithBaseDelay(cfg.BaseDelay()),
		session.WithSleep(sleep),
		session.WithEmitter(tally),
		session.WithLogger(logger),
	)

	if st.Values != nil {
		err = s.SetArray(st.Values)
	} else {
		_, err = s.Generate()
	}
	if err != nil {
		return StepResult{}, err
	}

	if err := s.Play(ctx, cfg.Algorithm); err != nil {
		return StepResult{}, err
	}

	values := s.Values()
	return StepResult{
		Algorithm: cfg.Algorithm,
		Size:      len(values),
		Sorted:    slices.IsSorted(values),
		Metrics:   tally.Values(),
	}, nil
}
