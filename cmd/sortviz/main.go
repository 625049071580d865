package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string
	speed      float64
	size       int
	minValue   int
	maxValue   int
	seed       int64
	shape      string
	values     string
	theme      string
	// trace
	format  string
	outFile string
	svgFile string
	// bench
	benchSizes []int
)

// main registers commands and flags, launches the TUI when no subcommand is
// given, and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "animated sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "speed factor, delay = base / speed")
	pf.IntVar(&size, "size", array.DefaultSize, "array length")
	pf.IntVar(&minValue, "min", array.DefaultMin, "smallest generated value")
	pf.IntVar(&maxValue, "max", array.DefaultMax, "largest generated value")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks a fresh one)")
	pf.StringVar(&shape, "shape", "", "array shape: "+shapeList())
	pf.StringVar(&values, "values", "", "comma separated array to sort instead of a generated one")

	rootCmd.Flags().StringVar(&theme, "theme", "classic", "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the TUI runs")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run a paced sort headless, logging every event",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "record the event trace of a sort",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, yaml)")
	traceCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	traceCmd.Flags().StringVar(&svgFile, "svg", "", "also draw input and output bars to this svg file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "tally comparisons and swaps for every algorithm",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{10, 25, 50, 100, 200}, "array sizes to benchmark")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(session.WithLogger(logging.Discard()))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range s.Algorithms() {
				fmt.Fprintf(w, "%s\t%s\n", name, s.Describe(name))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available array presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tSIZE\tSHAPE\tSPEED")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%g\n", name, p.Algorithm, p.Array.Size, p.Array.Shape, p.Speed)
			}
			return w.Flush()
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a yaml scenario of sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [trace.json]",
		Short: "draw a saved json trace as an svg bar chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, benchCmd, listCmd, presetsCmd, scenarioCmd, svgCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func shapeList() string {
	names := make([]string, 0, len(array.Shapes()))
	for _, sh := range array.Shapes() {
		names = append(names, string(sh))
	}
	return strings.Join(names, ", ")
}

// loadConfig layers defaults, then --config or --preset, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("size") {
		cfg.Array.Size = size
	}
	if flags.Changed("min") {
		cfg.Array.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Array.Max = maxValue
	}
	if flags.Changed("seed") {
		cfg.Array.Seed = seed
	}
	if flags.Changed("shape") {
		cfg.Array.Shape = shape
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*log.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level), nil
}

// newSession builds a session from cfg and fills it from --values or the
// generator.
func newSession(cfg *config.Config, logger *log.Logger, opts ...session.Option) (*session.Session, error) {
	spec, err := cfg.ArraySpec()
	if err != nil {
		return nil, err
	}

	base := []session.Option{
		session.WithSpec(spec),
		session.WithGenerator(array.NewGenerator(cfg.GeneratorSeed())),
		session.WithSpeed(cfg.Speed),
		session.WithBaseDelay(cfg.BaseDelay()),
		session.WithLogger(logger),
	}
	s := session.New(append(base, opts...)...)

	if values != "" {
		vals, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		return s, s.SetArray(vals)
	}
	_, err = s.Generate()
	return s, err
}

func parseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("invalid value %d: values must be positive", v)
		}
		vals = append(vals, v)
	}
	if len(vals) > config.MaxSize {
		return nil, fmt.Errorf("%d values exceed the maximum of %d", len(vals), config.MaxSize)
	}
	return vals, nil
}

func algorithmArg(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Algorithm
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = newLogger(cfg, f); err != nil {
			return err
		}
	}

	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	return viz.Run(s, theme)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	tally := metrics.Default()
	tally.Add(metrics.NewAnimationTime(cfg.BaseDelay(), cfg.Speed))
	s, err := newSession(cfg, logger,
		session.WithEmitter(step.Multi(step.NewLogEmitter(logger), tally)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := s.Values()
	if err := s.Play(ctx, algorithmArg(cfg, args)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "input:  %v\n", input)
	fmt.Fprintf(out, "output: %v\n", s.Values())
	for _, name := range tally.Names() {
		fmt.Fprintf(out, "%s: %g\n", name, tally.Values()[name])
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := trace.ParseFormat(format)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	tr, err := trace.Record(s, algorithmArg(cfg, args))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	if err := tr.Write(w, f); err != nil {
		return err
	}
	if outFile != "" {
		logger.Info("trace written", "path", outFile, "events", len(tr.Events), "format", f)
	}

	if svgFile != "" {
		file, err := os.Create(svgFile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.WriteTraceSVG(file, tr); err != nil {
			return err
		}
		logger.Info("svg written", "path", svgFile)
	}
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	w := cmd.OutOrStdout()
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	return traceToSVG(in, w)
}

// traceToSVG reads a json trace from r and writes its bar chart to w.
func traceToSVG(r io.Reader, w io.Writer) error {
	tr, err := trace.ReadJSON(r)
	if err != nil {
		return fmt.Errorf("read trace: %w", err)
	}
	return export.WriteTraceSVG(w, tr)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	results, err := automation.Bench(cmd.Context(), cfg, benchSizes, logger)
	if err != nil {
		return err
	}

	algorithms := automation.Algorithms()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d algorithms, shape %s\n\n", len(algorithms), cfg.Array.Shape)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tCOMPARISONS\tSWAPS\tHIGHLIGHTS\tANIMATION")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\t%.1fs\n",
			r.Algorithm, r.Size, r.Comparisons, r.Swaps, r.Highlights, r.Animation)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(benchSizes) < 2 {
		return nil
	}
	series := automation.Series(results, func(r automation.BenchResult) float64 { return r.Comparisons })
	data := make([][]float64, len(algorithms))
	for i, name := range algorithms {
		data[i] = series[name]
	}
	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow, asciigraph.Magenta}
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.SeriesColors(colors[:min(len(colors), len(algorithms))]...),
		asciigraph.Caption("comparisons per size: "+strings.Join(algorithms, ", ")),
	)
	fmt.Fprintf(out, "\n%s\n", graph)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := automation.RunScenario(ctx, sc, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tSIZE\tSORTED\tCOMPARISONS\tSWAPS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\t%.0f\n",
			i+1, r.Algorithm, r.Size, r.Sorted, r.Metrics["comparisons"], r.Metrics["swaps"])
	}
	return w.Flush()
}
