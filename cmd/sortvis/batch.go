package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortvis/internal/audio"
	"github.com/san-kum/sortvis/internal/automation"
	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	sweepMin   int
	sweepMax   int
	sweepSteps int
	numTrials  int
	workers    int
	snapSteps  int
	noteMillis int
)

func printResults(results []automation.RunResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tCOUNT\tSTATE\tSTEPS\tCOMPARISONS\tSWAPS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			i+1, r.Algorithm, r.Count, r.Final, humanize.Comma(int64(r.Stats.Steps)),
			humanize.Comma(int64(r.Stats.Comparisons)), humanize.Comma(int64(r.Stats.Swaps)))
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("scenario %s: %d steps\n", sc.Name, len(sc.Steps))
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	fmt.Println()
	results, err := automation.RunScenario(cmd.Context(), sc)
	if err != nil {
		return err
	}
	return printResults(results)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	results, err := automation.RunSweep(cmd.Context(), &automation.Sweep{
		Algorithm: cfg.GetAlgorithm(),
		Pattern:   cfg.Source.Pattern,
		MinCount:  sweepMin,
		MaxCount:  sweepMax,
		NumSteps:  sweepSteps,
		Seed:      cfg.Seed,
	})
	if err != nil {
		return err
	}
	if err := printResults(results); err != nil {
		return err
	}
	if len(results) < 2 {
		return nil
	}
	swaps := make([]float64, len(results))
	for i, r := range results {
		swaps[i] = float64(r.Stats.Swaps)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(swaps,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: swaps by input size", cfg.Algorithm)),
	))
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	bar := pb.New(numTrials)
	bar.Output = os.Stderr
	bar.SetMaxWidth(70)
	bar.Prefix(string(cfg.GetAlgorithm()) + " ")
	bar.Start()
	results, err := automation.RunTrials(cmd.Context(), &automation.TrialConfig{
		Algorithm: cfg.GetAlgorithm(),
		Count:     cfg.Source.Count,
		NumTrials: numTrials,
		Seed:      cfg.Seed,
		Workers:   workers,
		Progress:  func() { bar.Increment() },
	})
	bar.Finish()
	if err != nil {
		return err
	}
	st := automation.Summarize(results)
	fmt.Printf("%s over %d random inputs of %d values\n", cfg.Algorithm, st.Trials, cfg.Source.Count)
	fmt.Printf("  steps:       min %d  max %d  mean %.1f\n", st.MinSteps, st.MaxSteps, st.MeanSteps)
	fmt.Printf("  comparisons: mean %.1f\n", st.MeanCmps)
	fmt.Printf("  swaps:       mean %.1f\n", st.MeanSwaps)
	return nil
}

// runSnapshot steps a run headless and exports its frame as SVG.
func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if snapSteps > 0 {
		if _, err := dispatch.Drive(cmd.Context(), s.d, snapSteps); err != nil {
			return err
		}
	}
	f := s.d.Frame()
	if err := export.WriteFile(args[0], export.FrameToSVG(f, cfg.Window.Width, cfg.Window.Height)); err != nil {
		return err
	}
	okColor.Printf("wrote %s after %d steps (%s)\n", args[0], f.Stats.Steps, f.State)
	return nil
}

// writeTraceSVG plots an inversion series next to the terminal graph.
func writeTraceSVG(path string, data []float64, algo engine.Algorithm) error {
	if err := export.WriteFile(path, export.SeriesToSVG(data, 800, 300, "#00ff00")); err != nil {
		return err
	}
	okColor.Printf("wrote %s inversion trace to %s\n", algo, path)
	return nil
}

// runSonify records one note per step of a headless run and writes a WAV file.
func runSonify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	rec := audio.NewRecorder()
	s.d.AddObserver(rec)
	if _, err := dispatch.Drive(cmd.Context(), s.d, maxSteps); err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	noteDur := time.Duration(noteMillis) * time.Millisecond
	if err := audio.WriteWAV(f, rec.Notes(), noteDur); err != nil {
		return err
	}
	okColor.Printf("wrote %s: %d notes, %v\n", args[0], len(rec.Notes()), noteDur*time.Duration(len(rec.Notes())))
	return nil
}
