// Package tui provides a Bubble Tea cover-flow browser for the artist gallery.
package tui

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/artist-gallery/internal/carousel"
	"github.com/handiism/artist-gallery/internal/config"
	"github.com/handiism/artist-gallery/internal/gallery"
	"github.com/handiism/artist-gallery/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1F3F5"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	styleChipStyle = chipStyle.
			Background(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Rows above the carousel: title, status, blank, search, blank.
const canvasTop = 5

const frameInterval = 16 * time.Millisecond

// Images is the portrait source the TUI renders from.
type Images interface {
	gallery.ImageCache
	Resolve(artist model.Artist) (string, bool)
	Thumbnail(id string) (image.Image, bool)
}

// dragState tracks the mouse gesture in terminal cells.
type dragState struct {
	pressed bool
	moved   bool
	pressX  int
	last    time.Time
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctrl     *gallery.Controller
	images   Images
	settings *config.Settings
	settle   *carousel.Settle
	geometry cardGeometry

	search   textinput.Model
	spinner  spinner.Model
	progress progress.Model

	ctx    context.Context
	cancel context.CancelFunc

	drag  dragState
	clock func() time.Time

	prefetching int
	sized       bool
	width       int
	height      int
}

// NewModel creates a new TUI model browsing source.
func NewModel(source gallery.Source, images Images, settings *config.Settings, opts ...gallery.Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Search artists, mediums, styles..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	settle := carousel.NewSettle(carousel.SettleDuration)

	opts = append(opts, gallery.WithEngineOptions(
		carousel.WithOnDragStart(settle.Cancel),
		carousel.WithSpacing(settings.SpacingWide),
	))
	ctrl := gallery.New(source, images, opts...)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		ctrl:     ctrl,
		images:   images,
		settings: settings,
		settle:   settle,
		geometry: cardGeometry{
			cellWidthPx: settings.CellWidthPx,
			baseCols:    settings.ThumbnailWidth,
			baseRows:    max(2, settings.ThumbnailHeight/2),
		},
		search:   ti,
		spinner:  sp,
		progress: prog,
		ctx:      ctx,
		cancel:   cancel,
		clock:    time.Now,
		width:    80,
		height:   24,
	}
}

// Controller returns the gallery controller behind the model.
func (m Model) Controller() *gallery.Controller {
	return m.ctrl
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// frameMsg advances the settle animation.
	frameMsg time.Time

	// prefetchDoneMsg is sent when a prefetch batch completes.
	prefetchDoneMsg struct {
		Report gallery.Report
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		m.search.Width = min(max(msg.Width-10, 20), 60)
		m.ctrl.Engine().SetSpacing(carousel.SpacingFor(
			msg.Width, m.settings.NarrowWidth, m.settings.SpacingWide, m.settings.SpacingNarrow))
		if m.sized {
			return m, nil
		}
		// The first window size starts the initial prefetch.
		m.sized = true
		cmd := m.prefetch()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if m.settle.Active(m.clock()) {
			return m, m.animate()
		}
		return m, nil

	case prefetchDoneMsg:
		m.prefetching = max(0, m.prefetching-1)
		_, _, percent := m.ctrl.Progress()
		cmds = append(cmds, m.progress.SetPercent(percent/100))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit
	}

	if m.search.Focused() {
		switch key {
		case "enter":
			m.search.Blur()
			return m.runSearch(m.search.Value())
		case "esc":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		m.cancel()
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "esc":
		if m.ctrl.Query() != "" {
			m.search.SetValue("")
			return m.runSearch("")
		}
		return m, nil
	}

	if k := carousel.ParseKey(key); k != carousel.KeyNone {
		return m.navigate(func() { m.ctrl.Engine().HandleKey(k) })
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	engine := m.ctrl.Engine()
	px := float64(msg.X) * m.settings.CellWidthPx

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		return m.navigate(func() { engine.HandleKey(carousel.KeyLeft) })

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		return m.navigate(func() { engine.HandleKey(carousel.KeyRight) })

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.onCanvas(msg.Y) {
			return m, nil
		}
		m.drag = dragState{pressed: true, pressX: msg.X, last: m.clock()}
		engine.StartDrag(px)
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.drag.pressed:
		now := m.clock()
		engine.MoveDrag(px, now.Sub(m.drag.last))
		m.drag.last = now
		if msg.X != m.drag.pressX {
			m.drag.moved = true
		}
		return m, nil

	case msg.Action == tea.MouseActionRelease && m.drag.pressed:
		clicked := -1
		if !m.drag.moved {
			clicked = m.hitTest(msg.X, msg.Y)
		}
		m.drag = dragState{}
		return m.navigate(func() {
			engine.EndDrag()
			if clicked >= 0 {
				engine.Select(clicked)
			}
		})
	}
	return m, nil
}

// navigate runs fn and starts a settle animation from wherever the strip
// was drawn before fn to where it is drawn after.
func (m Model) navigate(fn func()) (tea.Model, tea.Cmd) {
	engine := m.ctrl.Engine()
	now := m.clock()

	before := engine.StripOffset() + m.settle.Residual(now)
	fn()
	m.settle.Start(before-engine.StripOffset(), now)

	cmd := tea.Batch(m.animate(), m.prefetch())
	return m, cmd
}

func (m Model) runSearch(query string) (tea.Model, tea.Cmd) {
	m.settle.Cancel()
	m.ctrl.Search(query)
	_, _, percent := m.ctrl.Progress()
	cmd := tea.Batch(m.prefetch(), m.progress.SetPercent(percent/100))
	return m, cmd
}

func (m Model) animate() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// prefetch snapshots the window on the event loop and loads it in the
// background.
func (m *Model) prefetch() tea.Cmd {
	records := m.ctrl.WindowRecords()
	if len(records) == 0 {
		return nil
	}
	m.prefetching++
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return prefetchDoneMsg{Report: ctrl.PrefetchRecords(ctx, records)}
	}
}

func (m Model) canvasHeight() int {
	return m.geometry.baseRows + 2
}

func (m Model) onCanvas(y int) bool {
	return y >= canvasTop && y < canvasTop+m.canvasHeight()
}

func (m Model) hitTest(x, y int) int {
	if !m.onCanvas(y) {
		return -1
	}
	return m.paint().ownerAt(x, y-canvasTop)
}

func (m Model) paint() *canvas {
	shift := m.settle.Residual(m.clock())
	layouts := m.ctrl.Engine().Layouts(shift)
	records := m.ctrl.Records()

	cards := make([]card, len(layouts))
	for i, l := range layouts {
		a := records[l.Index]
		c := card{layout: l, artist: a}
		if _, ok := m.images.Resolve(a); ok {
			if img, ok := m.images.Thumbnail(a.ID); ok {
				c.image = img
			}
			c.loading = m.images.IsLoading(a.ID)
		}
		cards[i] = c
	}
	return paint(m.width, m.canvasHeight(), m.geometry, cards, m.spinner.View())
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Artist Gallery"))
	b.WriteString("\n")
	status := m.ctrl.Status()
	if m.prefetching > 0 {
		status += " " + spinnerStyle.Render(m.spinner.View())
	}
	b.WriteString(dimStyle.Render(status))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.ctrl.Records()) == 0 {
		b.WriteString(m.viewEmpty())
	} else {
		b.WriteString(m.paint().String())
		b.WriteString("\n\n")
		b.WriteString(m.viewInfo())
	}

	// Footer
	b.WriteString("\n")
	loaded, total, _ := m.ctrl.Progress()
	b.WriteString(m.progress.View())
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d portraits", loaded, total)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewEmpty() string {
	var lines []string
	if m.ctrl.NoResults() {
		lines = append(lines,
			warningStyle.Render(m.ctrl.Status()),
			"",
			dimStyle.Render("esc: show all artists"))
	} else {
		lines = append(lines, dimStyle.Render("No artists to show."))
	}
	// Pad to the canvas height so the footer does not jump.
	for len(lines) < m.canvasHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewInfo() string {
	a := m.ctrl.Selected()
	if a == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(a.Name))
	b.WriteString("\n")
	b.WriteString(chipStyle.Render(a.Medium))
	if a.Style != "" {
		b.WriteString(" ")
		b.WriteString(styleChipStyle.Render(a.Style))
	}
	b.WriteString("\n\n")

	width := min(max(m.width-10, 20), 80)
	b.WriteString(lipgloss.NewStyle().Width(width).Render(a.Bio))

	var facts []string
	if a.Nationality != "" {
		facts = append(facts, a.Nationality)
	}
	if a.HasBirthYear() {
		facts = append(facts, fmt.Sprintf("Born %d", a.BirthYear))
	}
	if len(facts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render(strings.Join(facts, " • ")))
	}
	if a.Website != "" {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(a.Website))
	}

	return boxStyle.Render(b.String())
}

func (m Model) getHelpText() string {
	if m.search.Focused() {
		return "enter: search • esc: cancel • ctrl+c: quit"
	}
	if m.ctrl.NoResults() {
		return "/: search • esc: show all • q: quit"
	}
	return "←/→: browse • drag/click: select • /: search • esc: clear • q: quit"
}
