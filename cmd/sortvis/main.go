package main

import (
	"fmt"
	"os"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/source"
	"github.com/san-kum/sortvis/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	algorithm  string
	drawMethod string
	count      int
	pattern    string
	numbers    string
	width      int
	height     int
	title      string
	frameRate  int
	seed       int64
	theme      string
	sound      bool
	logFile    string
	gifPath    string
	maxSteps   int
	output     string
)

// sourceFlags registers the flags shared by every command that builds a sequence.
func sourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "number of random values")
	cmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "value pattern: random, reversed, sorted, nearly, few")
	cmd.Flags().StringVarP(&numbers, "file", "f", "", "numbers file, one integer per line")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(config.DefaultAlgorithm), "sorting algorithm")
	cmd.Flags().StringVar(&drawMethod, "draw", string(config.DefaultDraw), "draw method: bars or points")
}

// viewFlags registers the flags of the interactive front ends.
func viewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "draw width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "draw height")
	cmd.Flags().StringVar(&title, "title", config.DefaultTitle, "window title")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames (and steps) per second")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&logFile, "log", "", "write diagnostics to this file")
}

// main registers commands and flags and runs the terminal visualizer when no
// subcommand is given. It exits with status 1 on any error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortvis",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	sourceFlags(rootCmd)
	viewFlags(rootCmd)
	rootCmd.Flags().StringVar(&gifPath, "gif", "sortvis.gif", "output path for G recordings")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "visualize a sort in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	sourceFlags(runCmd)
	viewFlags(runCmd)
	runCmd.Flags().StringVar(&gifPath, "gif", "sortvis.gif", "output path for G recordings")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "visualize a sort in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	sourceFlags(guiCmd)
	viewFlags(guiCmd)
	guiCmd.Flags().BoolVar(&sound, "sound", false, "play a tone for every swap")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "visualize a sort full-screen with block characters",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	sourceFlags(termCmd)
	viewFlags(termCmd)

	sonifyCmd := &cobra.Command{
		Use:   "sonify [path]",
		Short: "write a wav file with one tone per swap",
		Args:  cobra.ExactArgs(1),
		RunE:  runSonify,
	}
	sourceFlags(sonifyCmd)
	sonifyCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = until sorted)")
	sonifyCmd.Flags().IntVar(&noteMillis, "note", 60, "note length in milliseconds")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "run algorithms headless on the same input",
		RunE:  benchAlgorithms,
	}
	sourceFlags(benchCmd)
	benchCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = until sorted)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot inversions per step of a headless run",
		Args:  cobra.NoArgs,
		RunE:  traceRun,
	}
	sourceFlags(traceCmd)
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = until sorted)")
	traceCmd.Flags().StringVar(&output, "svg", "", "also write the trace as SVG to this path")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "write the state after some steps as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	sourceFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	snapshotCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	snapshotCmd.Flags().IntVar(&snapSteps, "steps", 0, "steps to run before the snapshot")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of headless sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run one algorithm over growing input sizes",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sourceFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepMin, "min", 10, "smallest input size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 200, "largest input size")
	sweepCmd.Flags().IntVar(&sweepSteps, "sizes", 8, "number of sizes")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "repeat one algorithm on many random inputs",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	sourceFlags(trialsCmd)
	trialsCmd.Flags().IntVar(&numTrials, "trials", 100, "number of trials")
	trialsCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = one per CPU)")

	genCmd := &cobra.Command{
		Use:   "gen [path]",
		Short: "write a generated sequence to a numbers file",
		Args:  cobra.ExactArgs(1),
		RunE:  generateFile,
	}
	genCmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "number of values")
	genCmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "value pattern")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range algorithms.Names() {
				fmt.Printf("  %d  %-10s %s\n", i+1, name, algorithms.Describe(name))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s %s, %d values (%s), %s\n", name, p.Algorithm, p.Source.Count, p.Source.Pattern, p.Draw)
			}
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list value patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range source.Patterns {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list terminal color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range viz.ThemeNames() {
				fmt.Printf("  %s\n", t)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sortvis.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, guiCmd, termCmd, sonifyCmd, benchCmd, traceCmd, snapshotCmd, scenarioCmd, sweepCmd, trialsCmd, genCmd, algorithmsCmd, presetsCmd, patternsCmd, themesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
