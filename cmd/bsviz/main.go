package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/bsviz/internal/batch"
	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/export"
	"github.com/san-kum/bsviz/internal/logging"
	"github.com/san-kum/bsviz/internal/parse"
	"github.com/san-kum/bsviz/internal/search"
	"github.com/san-kum/bsviz/internal/storage"
	"github.com/san-kum/bsviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	logFile    string
	// visualizer overrides
	preset       string
	stepInterval time.Duration
	frameRate    int
	theme        string
	record       bool
	// trace input
	arrayText  string
	targetText string
	save       bool
	// batch and export
	workers  int
	maxN     int
	output   string
	cellSize float64
)

// main registers the commands and runs the visualizer when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bsviz",
		Short: "animated binary search visualizer",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(logLevel, logFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE:         runVisualizer,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); default $"+logging.LevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultFile, "log file path")

	rootCmd.Flags().StringVar(&preset, "preset", "", "initial search preset")
	rootCmd.Flags().DurationVar(&stepInterval, "step", config.DefaultStepInterval, "time between comparisons")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().BoolVar(&record, "record", false, "save every finished search to the data directory")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run a search without the visualizer and print every step",
		Args:  cobra.NoArgs,
		RunE:  traceSearch,
	}
	traceCmd.Flags().StringVar(&arrayText, "array", "", "comma separated integers")
	traceCmd.Flags().StringVar(&targetText, "target", "", "value to search for")
	traceCmd.Flags().DurationVar(&stepInterval, "step", config.DefaultStepInterval, "time between comparisons")
	traceCmd.Flags().BoolVar(&save, "save", false, "save the trace to the data directory")
	_ = traceCmd.MarkFlagRequired("array")
	_ = traceCmd.MarkFlagRequired("target")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved searches",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a saved search as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot how a saved search narrowed its interval",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLEN\tTARGET\tARRAY")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				tgt := "-"
				if p.Target != nil {
					tgt = fmt.Sprint(*p.Target)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, len(p.Array), tgt, summarize(p.Array, 8))
			}
			w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "bsviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a saved search as an SVG step diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <run_id>.svg)")
	svgCmd.Flags().Float64Var(&cellSize, "cell", 24, "cell size in pixels")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every search of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default number of CPUs)")
	batchCmd.Flags().BoolVar(&save, "save", false, "save every search to the data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure comparisons for every target across array sizes",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&maxN, "max", 64, "largest array size")

	rootCmd.AddCommand(traceCmd, listCmd, showCmd, plotCmd, presetsCmd, initCmd, svgCmd, batchCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the effective config: defaults, then the config file,
// then the preset, then any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("step") {
		cfg.StepInterval = stepInterval
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runVisualizer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var store *storage.Store
	if record {
		store = storage.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
	}

	logging.Info("starting visualizer",
		zap.Int("len", len(cfg.Initial.Array)),
		zap.Duration("step", cfg.StepInterval),
		zap.Int("fps", cfg.FPS),
		zap.String("theme", cfg.Theme),
	)
	return viz.Run(cfg, store)
}

func traceSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	values, ok, err := parse.Array(arrayText)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("array is empty")
	}
	target, ok, err := parse.Target(targetText)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("target is empty")
	}

	steps := search.Run(values, target, cfg.StepInterval, time.Now())
	outcome, index := storage.Outcome(steps)

	fmt.Printf("array:  %s\n", summarize(values, 20))
	fmt.Printf("target: %d\n\n", target)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tLOW\tMID\tHIGH\tVALUE\tRESULT")
	for i, st := range steps {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n", i+1, st.Low, st.Mid, st.High, st.Value, st.Transition)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	if index >= 0 {
		fmt.Printf("%s at index %d", outcome, index)
	} else {
		fmt.Print(outcome)
	}
	fmt.Printf(" after %d of at most %d comparisons\n", len(steps), search.MaxComparisons(len(values)))

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(values, target, cfg.StepInterval, steps)
		if err != nil {
			return fmt.Errorf("failed to save trace: %w", err)
		}
		logging.Info("trace saved", zap.String("id", id), zap.String("outcome", outcome))
		fmt.Printf("saved: %s\n", id)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLEN\tTARGET\tOUTCOME\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d/%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Array),
			run.Target,
			run.Outcome,
			run.Comparisons,
			run.WorstCase,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, steps)
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no steps to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("target: %d in %d values\n", meta.Target, len(meta.Array))
	fmt.Printf("outcome: %s after %d/%d comparisons\n\n", meta.Outcome, meta.Comparisons, meta.WorstCase)

	widths := make([]float64, 0, len(steps)+1)
	mids := make([]float64, 0, len(steps))
	widths = append(widths, float64(len(meta.Array)))
	for _, s := range steps {
		widths = append(widths, float64(max(s.High-s.Low+1, 0)))
		mids = append(mids, float64(s.Mid))
	}

	fmt.Println(asciigraph.Plot(widths, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("interval width")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(mids, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("probed index")))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	svg := export.StepsSVG(meta.Array, steps, cellSize)
	if svg == "" {
		return fmt.Errorf("run %s has no values", meta.ID)
	}
	path := output
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := batch.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := batch.Run(context.Background(), sc, cfg.StepInterval, workers)
	if err != nil {
		return err
	}

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	var st *storage.Store
	if save {
		st = storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "NAME\tLEN\tTARGET\tOUTCOME\tINDEX\tSTEPS"
	if st != nil {
		header += "\tID"
	}
	fmt.Fprintln(w, header)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d/%d", r.Name, len(r.Array), r.Target, r.Outcome, r.Index, len(r.Steps), r.WorstCase)
		if st != nil {
			id, err := st.Save(r.Array, r.Target, cfg.StepInterval, r.Steps)
			if err != nil {
				return fmt.Errorf("failed to save %s: %w", r.Name, err)
			}
			logging.Info("batch search saved", zap.String("name", r.Name), zap.String("id", id))
			fmt.Fprintf(w, "\t%s", id)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	if maxN < 1 {
		return fmt.Errorf("--max must be at least 1, got %d", maxN)
	}
	points, err := batch.Sweep(context.Background(), maxN)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tAVG HIT\tMAX HIT\tAVG MISS\tMAX MISS\tBOUND")
	avg := make([]float64, len(points))
	bound := make([]float64, len(points))
	for i, p := range points {
		fmt.Fprintf(w, "%d\t%.2f\t%d\t%.2f\t%d\t%d\n", p.N, p.AvgFound, p.MaxFound, p.AvgMissed, p.MaxMissed, p.WorstCase)
		avg[i] = p.AvgFound
		bound[i] = float64(p.WorstCase)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.PlotMany([][]float64{avg, bound},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("average comparisons (green) vs worst case (red)"),
	))
	return nil
}

// summarize joins values, eliding the middle of long arrays.
func summarize(values []int, limit int) string {
	if len(values) <= limit {
		return parse.Join(values)
	}
	head, tail := values[:limit/2], values[len(values)-limit/2:]
	return parse.Join(head) + ",...," + parse.Join(tail)
}
