package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/fieldtopo/internal/config"
	"github.com/san-kum/fieldtopo/internal/parse"
	"github.com/san-kum/fieldtopo/internal/stats"
	"github.com/san-kum/fieldtopo/internal/storage"
	"github.com/san-kum/fieldtopo/internal/system"
	"github.com/san-kum/fieldtopo/internal/topo"
	"github.com/san-kum/fieldtopo/internal/tui"
	"github.com/san-kum/fieldtopo/internal/viz"
)

var (
	dataDir    string
	procs      int
	seed       int64
	stepLength float64
	maxSteps   int
	configFile string
	preset     string
	bins       int
	column     string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldtopo",
		Short: "electric field topology sampler for molecular structures",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fieldtopo", "data directory")

	sampleCmd := &cobra.Command{
		Use:   "sample [structure.pdb] [options]",
		Short: "sample field-line topology",
		Args:  cobra.ExactArgs(2),
		RunE:  runSample,
	}
	addSamplingFlags(sampleCmd)

	liveCmd := &cobra.Command{
		Use:   "live [structure.pdb] [options]",
		Short: "sample with live progress display",
		Args:  cobra.ExactArgs(2),
		RunE:  runLive,
	}
	addSamplingFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's sample distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "distance", "column to plot (distance|curvature)")
	plotCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sampling presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sampleCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&procs, "procs", config.DefaultWorkers, "worker count")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&stepLength, "step", config.DefaultStepLength, "integration step length")
	cmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "fixed per-path step bound")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "skip histogram output")
}

// resolveConfig layers preset < config file < explicit flags, the same
// precedence the flags themselves document.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("procs") {
		cfg.Workers = procs
	}
	if cmd.Flags().Changed("step") {
		cfg.StepLength = stepLength
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.StepBound = config.StepBoundConfig{Kind: "fixed", Value: maxSteps}
	}
	if cmd.Flags().Changed("bins") {
		cfg.Bins = bins
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	return cfg, nil
}

func buildSystem(structurePath, optionsPath string, cfg *config.Config, log *zap.Logger) (*system.System, error) {
	optFile, err := os.Open(optionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open options: %w", err)
	}
	defer optFile.Close()

	opts, err := parse.ReadOptions(optFile, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	pdbFile, err := os.Open(structurePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open structure: %w", err)
	}
	defer pdbFile.Close()

	charges, err := parse.ReadPDB(pdbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse structure: %w", err)
	}
	log.Info("loaded point charges",
		zap.Int("count", len(charges)),
		zap.String("file", structurePath),
	)

	return system.New(charges, opts, log)
}

func runSample(cmd *cobra.Command, args []string) error {
	return sampleAndReport(cmd, args, false)
}

func runLive(cmd *cobra.Command, args []string) error {
	return sampleAndReport(cmd, args, true)
}

func sampleAndReport(cmd *cobra.Command, args []string, live bool) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	bound, err := cfg.Bound()
	if err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	sys, err := buildSystem(args[0], args[1], cfg, log)
	if err != nil {
		return err
	}

	start := time.Now()

	var samples []topo.PathSample
	if live {
		engine := sys.Sampler(cfg.StepLength, bound, cfg.Workers, cfg.Seed)
		samples, err = tui.Run(engine, sys.Samples())
		if err != nil {
			return err
		}
	} else {
		samples = sys.Topology(cfg.StepLength, bound, cfg.Workers, cfg.Seed)
	}

	elapsed := time.Since(start)

	dist := stats.Summarize(stats.Distances(samples))
	curv := stats.Summarize(stats.Curvatures(samples))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Structure:  args[0],
		Options:    args[1],
		Seed:       cfg.Seed,
		StepLength: cfg.StepLength,
		Samples:    len(samples),
		Workers:    cfg.Workers,
		Summary: map[string]float64{
			"distance_mean":  dist.Mean,
			"distance_std":   dist.Std,
			"curvature_mean": curv.Mean,
			"curvature_std":  curv.Std,
			"non_finite":     float64(dist.NonFinite),
		},
	}, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	printSummary("distance", dist)
	printSummary("curvature", curv)

	if !quiet {
		fmt.Println(viz.Histogram("distance distribution", stats.Distances(samples), cfg.Bins, 10))
		fmt.Println(viz.Histogram("curvature distribution", stats.Curvatures(samples), cfg.Bins, 10))
	}

	return nil
}

func printSummary(name string, s stats.Summary) {
	fmt.Printf("%s: n=%d mean=%.6g std=%.6g min=%.6g max=%.6g", name, s.Count, s.Mean, s.Std, s.Min, s.Max)
	if s.NonFinite > 0 {
		fmt.Printf(" non-finite=%d", s.NonFinite)
	}
	fmt.Println()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRUCTURE\tSAMPLES\tWORKERS\tSEED\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID, run.Structure, run.Samples, run.Workers, run.Seed,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	var values []float64
	switch column {
	case "distance":
		values = stats.Distances(samples)
	case "curvature":
		values = stats.Curvatures(samples)
	default:
		return fmt.Errorf("unknown column: %s (want distance or curvature)", column)
	}

	fmt.Println(viz.Histogram(column+" distribution", values, bins, 14))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
