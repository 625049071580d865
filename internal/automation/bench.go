package automation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/step"
)

// BenchResult is the tally of one algorithm on one input size.
type BenchResult struct {
	Algorithm   string
	Size        int
	Comparisons float64
	Swaps       float64
	Highlights  float64
	// Animation is the paced playback time at the configured speed.
	Animation float64
}

// Bench sorts one generated array per size with every algorithm, unpaced.
// All algorithms see the same input for a given size. Results are ordered by
// size, then by algorithm in registry order.
func Bench(ctx context.Context, cfg *config.Config, sizes []int, logger *log.Logger) ([]BenchResult, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	spec, err := cfg.ArraySpec()
	if err != nil {
		return nil, err
	}

	gen := array.NewGenerator(cfg.GeneratorSeed())
	algorithms := Algorithms()
	results := make([]BenchResult, 0, len(sizes)*len(algorithms))

	for _, n := range sizes {
		spec.Size = n
		input, err := gen.Generate(spec)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", n, err)
		}

		for _, name := range algorithms {
			tally := metrics.Default()
			anim := metrics.NewAnimationTime(cfg.BaseDelay(), cfg.Speed)
			tally.Add(anim)

			s := session.New(
				session.WithEmitter(tally),
				session.WithSleep(step.NoSleep),
				session.WithSpeed(cfg.Speed),
				session.WithBaseDelay(cfg.BaseDelay()),
				session.WithLogger(logger),
			)
			if err := s.SetArray(input); err != nil {
				return nil, err
			}
			if err := s.Play(ctx, name); err != nil {
				return nil, fmt.Errorf("%s on size %d: %w", name, n, err)
			}

			v := tally.Values()
			results = append(results, BenchResult{
				Algorithm:   name,
				Size:        n,
				Comparisons: v["comparisons"],
				Swaps:       v["swaps"],
				Highlights:  v["highlights"],
				Animation:   anim.Value(),
			})
		}
		logger.Debug("bench size done", "size", n)
	}

	return results, nil
}

// Algorithms lists the registered algorithm names.
func Algorithms() []string {
	return session.New(session.WithLogger(logging.Discard())).Algorithms()
}

// Series groups a metric of bench results per algorithm, in size order,
// ready for plotting.
func Series(results []BenchResult, metric func(BenchResult) float64) map[string][]float64 {
	out := make(map[string][]float64)
	for _, r := range results {
		out[r.Algorithm] = append(out[r.Algorithm], metric(r))
	}
	return out
}
