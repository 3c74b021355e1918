package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/audio"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/gui"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/source"
	"github.com/san-kum/sortvis/internal/term"
	"github.com/san-kum/sortvis/internal/viz"
	"github.com/spf13/cobra"
)

const historyCapacity = 512

var (
	infoColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// resolveConfig layers defaults, a preset, a config file and changed flags,
// in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("draw") {
		cfg.Draw = drawMethod
	}
	if flags.Changed("count") {
		cfg.Source.Count = count
		cfg.Source.File = ""
	}
	if flags.Changed("pattern") {
		cfg.Source.Pattern = pattern
	}
	if flags.Changed("file") {
		cfg.Source.File = numbers
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("title") {
		cfg.Window.Title = title
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("sound") {
		cfg.Sound = sound
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is a loaded dispatcher with the metrics the front ends display.
type session struct {
	cfg        *config.Config
	d          *dispatch.Dispatcher
	inversions *metrics.Inversions
}

// newSession builds the sequence and the dispatcher. Every input error is
// reported here, before any window or terminal program is opened.
func newSession(cfg *config.Config, out io.Writer) (*session, error) {
	seq, err := cfg.Sequence()
	if err != nil {
		return nil, err
	}
	if cfg.Source.File != "" {
		infoColor.Fprintln(out, "Loaded numbers file.")
	} else {
		infoColor.Fprintln(out, "Generated random number sequence.")
	}

	d, err := dispatch.New(cfg.GetAlgorithm(), cfg.GetDraw(), cfg.Window.Width)
	if err != nil {
		return nil, err
	}
	if err := d.Load(seq); err != nil {
		return nil, err
	}
	inv := metrics.NewInversions(historyCapacity)
	d.AddMetric(inv)
	d.AddMetric(metrics.NewRuns())
	d.AddMetric(metrics.NewSwapRate())
	return &session{cfg: cfg, d: d, inversions: inv}, nil
}

// reload draws a fresh sequence with a new seed; file sources are re-read.
func (s *session) reload() (*engine.Sequence, error) {
	if s.cfg.Source.File == "" {
		s.cfg.Seed++
	}
	return s.cfg.Sequence()
}

// setupLogging sends the log package to path, or discards it.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "sortvis")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	m := viz.NewModel(s.d, viz.Options{
		FPS:        cfg.FPS,
		Theme:      cfg.Theme,
		Title:      cfg.Window.Title,
		GIFPath:    gifPath,
		Reload:     s.reload,
		Inversions: s.inversions,
	})
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	printSummary(s.d)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	win, err := gui.Open(gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.FPS,
		HUD:    true,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if cfg.Sound {
		snd := audio.NewSonifier()
		if err := snd.Start(); err != nil {
			warnColor.Printf("sound disabled: %v\n", err)
		} else {
			defer snd.Stop()
			s.d.AddObserver(snd)
		}
	}
	res, err := runLoop(s.d, win, win)
	if err != nil {
		return err
	}
	printResult(res, s.d)
	return nil
}

// runTerm drives the tcell front end with the same loop as the window.
func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	scr, err := term.Open(cfg.FPS)
	if err != nil {
		return err
	}
	res, err := runLoop(s.d, scr, nil)
	scr.Close()
	if err != nil {
		return err
	}
	printResult(res, s.d)
	return nil
}

// runLoop runs the frame loop until quit or interrupt. events defaults to
// the renderer when it is also an event source.
func runLoop(d *dispatch.Dispatcher, r engine.Renderer, events engine.EventSource) (*dispatch.Result, error) {
	if events == nil {
		events, _ = r.(engine.EventSource)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := dispatch.NewRunner(d, r, events).Run(ctx, dispatch.RunConfig{})
	if err != nil && ctx.Err() == nil {
		return nil, err
	}
	return res, nil
}

func printResult(res *dispatch.Result, d *dispatch.Dispatcher) {
	fmt.Printf("%s frames, final state %s\n", humanize.Comma(int64(res.Ticks)), res.Final)
	printSummary(d)
}

func printSummary(d *dispatch.Dispatcher) {
	st := d.Stats()
	c := warnColor
	if d.State() == engine.Sorted {
		c = okColor
	}
	c.Printf("%s: %s after %s steps (%s comparisons, %s swaps)\n",
		d.Algorithm(), d.State(), humanize.Comma(int64(st.Steps)),
		humanize.Comma(int64(st.Comparisons)), humanize.Comma(int64(st.Swaps)))
}

// benchRow is the outcome of one headless run.
type benchRow struct {
	algo    engine.Algorithm
	result  *dispatch.Result
	metrics map[string]float64
	elapsed time.Duration
}

// bench sorts a clone of seq with every algorithm in algos.
func bench(ctx context.Context, seq *engine.Sequence, algos []engine.Algorithm, limit int) ([]benchRow, error) {
	rows := make([]benchRow, 0, len(algos))
	for _, algo := range algos {
		d, err := dispatch.New(algo, engine.Bars, config.DefaultWidth)
		if err != nil {
			return nil, err
		}
		if err := d.Load(seq.Clone()); err != nil {
			return nil, err
		}
		for _, m := range metrics.Defaults(0) {
			d.AddMetric(m)
		}
		start := time.Now()
		res, err := dispatch.Drive(ctx, d, limit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		rows = append(rows, benchRow{algo: algo, result: res, metrics: d.Metrics(), elapsed: time.Since(start)})
	}
	return rows, nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	algos := algorithms.Names()
	if len(args) > 0 {
		algos = algos[:0]
		for _, a := range args {
			algo, err := engine.ParseAlgorithm(a)
			if err != nil {
				return err
			}
			algos = append(algos, algo)
		}
	}
	seq, err := cfg.Sequence()
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d algorithms on %d values...\n\n", len(algos), seq.Len())
	rows, err := bench(cmd.Context(), seq, algos, maxSteps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTATE\tSTEPS\tCOMPARISONS\tSWAPS\tSWAPS/STEP\tTIME")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%v\n",
			r.algo, r.result.Final, humanize.Comma(int64(r.result.Stats.Steps)),
			humanize.Comma(int64(r.result.Stats.Comparisons)), humanize.Comma(int64(r.result.Stats.Swaps)),
			r.metrics["swaps_per_step"], r.elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := cfg.Sequence()
	if err != nil {
		return err
	}
	d, err := dispatch.New(cfg.GetAlgorithm(), cfg.GetDraw(), cfg.Window.Width)
	if err != nil {
		return err
	}
	if err := d.Load(seq); err != nil {
		return err
	}
	inv := metrics.NewInversions(0)
	d.AddMetric(inv)

	initial := float64(metrics.Count(seq.Values()))
	res, err := dispatch.Drive(cmd.Context(), d, maxSteps)
	if err != nil {
		return err
	}

	data := append([]float64{initial}, inv.History()...)
	if len(data) < 2 {
		fmt.Println("already sorted")
		return nil
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s: inversions per step", d.Algorithm())),
	)
	fmt.Println(graph)
	fmt.Printf("\nsteps: %d  comparisons: %d  swaps: %d  final: %s\n",
		res.Stats.Steps, res.Stats.Comparisons, res.Stats.Swaps, res.Final)
	if output != "" {
		return writeTraceSVG(output, data, d.Algorithm())
	}
	return nil
}

func generateFile(cmd *cobra.Command, args []string) error {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	seq, err := source.Generate(pattern, count, s)
	if err != nil {
		return err
	}
	if err := source.WriteFile(args[0], seq.Values()); err != nil {
		return err
	}
	okColor.Printf("wrote %d %s values to %s\n", seq.Len(), pattern, args[0])
	return nil
}
