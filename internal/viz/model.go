package viz

import (
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/metrics"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statsWidth    = 50
	maxGIFFrames  = 1200
)

type TickMsg time.Time

// Options configures the terminal front end.
type Options struct {
	Width, Height int
	FPS           int
	Theme         string
	Title         string
	GIFPath       string
	SVGPath       string
	// Reload produces a new sequence for the N key; nil disables it.
	Reload func() (*engine.Sequence, error)
	// Inversions, when attached to the dispatcher, is plotted in the side panel.
	Inversions *metrics.Inversions
}

// Model steps a dispatcher once per tick and draws it on a Braille canvas.
type Model struct {
	d          *dispatch.Dispatcher
	opts       Options
	canvas     *Canvas
	frame      engine.Frame
	theme      Theme
	st         styles
	ticks      int
	paused     bool
	showHelp   bool
	recording  bool
	frames     []*image.Paletted
	status     string
	err        error
	autoResize bool
}

func NewModel(d *dispatch.Dispatcher, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "sortvis.gif"
	}
	if opts.SVGPath == "" {
		opts.SVGPath = "sortvis.svg"
	}
	autoResize := opts.Width <= 0 || opts.Height <= 0
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		d:          d,
		opts:       opts,
		canvas:     NewCanvas(opts.Width, opts.Height),
		theme:      theme,
		st:         newStyles(theme),
		autoResize: autoResize,
	}
	_ = m.Render(d.Frame())
	return m
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Render draws f on the canvas.
func (m *Model) Render(f engine.Frame) error {
	m.frame = f
	m.canvas.DrawFrame(f)
	return nil
}

// Update handles input events and steps the dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if m.autoResize {
			m.canvas = NewCanvas(msg.Width-statsWidth, msg.Height-4)
			_ = m.Render(m.d.Frame())
		}
	case TickMsg:
		if !m.paused {
			if _, err := m.d.Tick(); err != nil {
				log.Printf("viz: %v", err)
				m.err = err
				return m, tea.Quit
			}
		}
		_ = m.Render(m.d.Frame())
		m.ticks++
		if m.recording {
			m.frames = append(m.frames, captureFrame(m.canvas))
			if len(m.frames) >= maxGIFFrames {
				m.stopRecording()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		if err := m.d.Restart(); err != nil {
			m.status = err.Error()
		}
	case "n":
		m.reload()
	case "d":
		m.d.SetDrawMethod(m.d.DrawMethod().Toggle())
	case "t":
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = make([]*image.Paletted, 0)
			m.status = "recording"
		}
	case "s":
		m.snapshot()
	case "?":
		m.showHelp = !m.showHelp
	case "1", "2", "3", "4", "5":
		algo := engine.Algorithms[int(key[0]-'1')]
		if err := m.d.SwitchAlgorithm(algo); err != nil {
			m.status = err.Error()
		}
	}
	_ = m.Render(m.d.Frame())
	return m, nil
}

func (m *Model) reload() {
	if m.opts.Reload == nil {
		return
	}
	seq, err := m.opts.Reload()
	if err == nil {
		err = m.d.Load(seq)
	}
	if err != nil {
		log.Printf("viz: reload: %v", err)
		m.status = err.Error()
	}
}

// snapshot writes the current frame as SVG, four pixels per canvas dot.
func (m *Model) snapshot() {
	w, h := m.canvas.PixelSize()
	if err := export.WriteFile(m.opts.SVGPath, export.FrameToSVG(m.frame, w*4, h*4)); err != nil {
		log.Printf("viz: snapshot: %v", err)
		m.status = err.Error()
		return
	}
	m.status = "saved " + m.opts.SVGPath
}

func (m *Model) stopRecording() {
	m.recording = false
	if err := saveGIF(m.opts.GIFPath, m.frames); err != nil {
		log.Printf("viz: save gif: %v", err)
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.opts.GIFPath)
	}
	m.frames = nil
}

func (m Model) stateLabel() string {
	switch {
	case m.frame.State == engine.Sorted:
		return m.st.sorted.Render("SORTED")
	case m.frame.State == engine.Idle:
		return m.st.paused.Render("IDLE")
	case m.paused:
		return m.st.paused.Render("PAUSED")
	}
	return m.st.running.Render(AnimatedSpinner(m.ticks) + " RUNNING")
}

// View renders the TUI interface.
func (m Model) View() string {
	f := m.frame
	canvasView := m.st.canvas.Render(m.canvas.String()) + "\n" +
		m.st.marker.Render(m.canvas.Marker(len(f.Values), f.Cursor.Index, f.Touched))

	var s strings.Builder
	title := strings.ToUpper(string(f.Algorithm))
	if m.opts.Title != "" {
		title = m.opts.Title + " · " + title
	}
	s.WriteString(m.st.header.Render(title) + "\n")
	s.WriteString(m.stateLabel())
	if m.recording {
		s.WriteString("  " + m.st.rec.Render("● REC"))
	}
	s.WriteString("\n\n")

	if m.opts.Inversions != nil {
		if hist := m.opts.Inversions.History(); len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("inversions"))
			s.WriteString(m.st.graph.Render(chart) + "\n\n")
		}
		s.WriteString(m.row("Progress", ProgressBar(m.opts.Inversions.Progress(), 16)))
	}

	s.WriteString(m.row("Elements", fmt.Sprintf("%d", len(f.Values))))
	s.WriteString(m.row("Max", fmt.Sprintf("%d", f.Meta.MaxValue)))
	s.WriteString(m.row("Draw", string(f.Draw)))
	s.WriteString(m.row("Steps", fmt.Sprintf("%d", f.Stats.Steps)))
	s.WriteString(m.row("Comparisons", fmt.Sprintf("%d", f.Stats.Comparisons)))
	s.WriteString(m.row("Swaps", fmt.Sprintf("%d", f.Stats.Swaps)))
	if v, ok := f.Metrics["inversions"]; ok {
		s.WriteString(m.row("Inversions", fmt.Sprintf("%.0f", v)))
	}
	if v, ok := f.Metrics["runs"]; ok {
		s.WriteString(m.row("Runs", fmt.Sprintf("%.0f", v)))
	}

	s.WriteString("\nALGORITHMS\n")
	for i, a := range algorithms.Names() {
		line := fmt.Sprintf("%d %-10s %s", i+1, a, algorithms.Describe(a))
		if a == f.Algorithm {
			s.WriteString(m.st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + m.st.label.Width(0).Render(line) + "\n")
		}
	}

	if m.status != "" {
		s.WriteString("\n" + m.st.value.Render(m.status) + "\n")
	}
	s.WriteString(m.st.help.Render("─────────────────────\nSP:Pause R:Restart N:New Q:Quit\nD:Draw T:Theme G:Record S:SVG ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) row(label, value string) string {
	return m.st.label.Render(label) + m.st.value.Render(value) + "\n"
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart same values      ║
║  N        - New sequence             ║
║  1-5      - Switch algorithm         ║
║  D        - Bars / points            ║
║  G        - Toggle GIF recording     ║
║  S        - Save SVG snapshot        ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
