// Package tui implements the interactive review flow using Bubble Tea.
// It scans the incoming tree, lists every planned move for approval, and
// applies the approved batch with live progress.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-media-sort/internal/config"
	"github.com/litescript/ls-media-sort/internal/library"
	"github.com/litescript/ls-media-sort/internal/naming"
	"github.com/litescript/ls-media-sort/internal/sorter"
)

// View modes
type viewMode int

const (
	viewPlanning viewMode = iota
	viewReview
	viewApplying
	viewDone
)

// Messages
type planMsg struct {
	result sorter.PlanResult
	err    error
}

type progressMsg sorter.ProgressEvent

type applyDoneMsg struct {
	stats sorter.Stats
}

// Model is the review application state
type Model struct {
	cfg    config.Config
	runner *sorter.Runner

	mode    viewMode
	spinner spinner.Model

	viewport viewport.Model
	ready    bool

	// Review state
	plan   sorter.PlanResult
	cursor int

	// Apply state
	progressCh chan sorter.ProgressEvent
	statsCh    chan sorter.Stats
	current    int
	applyLog   []string
	failures   []string

	// Done state
	stats sorter.Stats
	err   error

	width  int
	height int
}

// NewModel creates the initial model
func NewModel(cfg config.Config, runner *sorter.Runner) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		cfg:     cfg,
		runner:  runner,
		spinner: sp,
	}
}

// Init starts the scan immediately; the user reviews its result.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runPlan())
}

func (m Model) runPlan() tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		result, err := runner.Plan()
		return planMsg{result: result, err: err}
	}
}

// waitForProgress delivers the next apply event; a closed channel means
// the batch finished and the final stats are ready.
func waitForProgress(progressCh chan sorter.ProgressEvent, statsCh chan sorter.Stats) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-progressCh
		if !ok {
			return applyDoneMsg{stats: <-statsCh}
		}
		return progressMsg(ev)
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewHeight := msg.Height - headerHeight - footerHeight
		if viewHeight < 1 {
			viewHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewHeight
		}
		m.syncViewport()
		return m, nil

	case planMsg:
		if msg.err != nil {
			m.err = msg.err
			m.mode = viewDone
			m.syncViewport()
			return m, nil
		}
		m.plan = msg.result
		if len(m.plan.Plans) == 0 {
			// Nothing to move; skip straight to the summary.
			m.stats = sorter.Stats{Scanned: m.plan.Scanned, Skipped: m.plan.Skipped}
			m.mode = viewDone
			m.syncViewport()
			return m, nil
		}
		m.mode = viewReview
		m.syncViewport()
		return m, nil

	case progressMsg:
		m.current = msg.Index
		if msg.Err != nil {
			line := fmt.Sprintf("%s: %v", filepath.Base(msg.Plan.Source), msg.Err)
			m.failures = append(m.failures, line)
			m.applyLog = append(m.applyLog, errorStyle.Render("✗ ")+line)
		} else {
			m.applyLog = append(m.applyLog,
				successStyle.Render("✓ ")+filepath.Base(msg.Plan.Source))
		}
		m.syncViewport()
		return m, waitForProgress(m.progressCh, m.statsCh)

	case applyDoneMsg:
		m.stats = msg.stats
		m.mode = viewDone
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if m.mode == viewPlanning || m.mode == viewApplying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		// Mid-apply the batch has to finish; moves are not interruptible.
		if m.mode != viewApplying {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode != viewReview {
		// Let the viewport scroll the apply log or the summary.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}
	case "down", "j":
		if m.cursor < len(m.plan.Plans)-1 {
			m.cursor++
			m.syncViewport()
		}
	case "pgup":
		m.cursor -= m.viewport.Height
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.syncViewport()
	case "pgdown":
		m.cursor += m.viewport.Height
		if m.cursor > len(m.plan.Plans)-1 {
			m.cursor = len(m.plan.Plans) - 1
		}
		m.syncViewport()
	case "g", "home":
		m.cursor = 0
		m.syncViewport()
	case "G", "end":
		m.cursor = len(m.plan.Plans) - 1
		m.syncViewport()
	case "enter", "y":
		return m.startApply()
	}

	return m, nil
}

// startApply kicks off the batch on its own goroutine and begins
// consuming its progress events.
func (m Model) startApply() (tea.Model, tea.Cmd) {
	m.mode = viewApplying
	m.current = 0
	m.progressCh = make(chan sorter.ProgressEvent)
	m.statsCh = make(chan sorter.Stats, 1)

	runner, plan := m.runner, m.plan
	progressCh, statsCh := m.progressCh, m.statsCh
	go func() {
		stats := runner.Apply(plan, func(ev sorter.ProgressEvent) {
			progressCh <- ev
		})
		close(progressCh)
		statsCh <- stats
	}()

	m.syncViewport()
	return m, tea.Batch(m.spinner.Tick, waitForProgress(progressCh, statsCh))
}

const (
	headerHeight = 3
	footerHeight = 2
)

// View renders the whole screen
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("MEDIA SORT")

	var status string
	switch m.mode {
	case viewPlanning:
		status = m.spinner.View() + " scanning " + m.cfg.Folders.Incoming
	case viewReview:
		status = fmt.Sprintf("%d moves planned, %d files without a recognizable pattern",
			len(m.plan.Plans), m.plan.Skipped)
	case viewApplying:
		status = fmt.Sprintf("%s applying %d/%d  %s",
			m.spinner.View(), m.current, len(m.plan.Plans),
			ProgressBar(m.current, len(m.plan.Plans), 30))
	case viewDone:
		if m.err != nil {
			status = errorStyle.Render("scan failed")
		} else {
			status = successStyle.Render("done")
		}
	}

	return title + "\n" + status + "\n"
}

func (m Model) renderFooter() string {
	var help string
	switch m.mode {
	case viewReview:
		help = "↑/↓ navigate • enter apply all • q quit without touching anything"
	case viewApplying:
		help = "moving files..."
	default:
		help = "q quit"
	}

	return "\n" + mutedStyle.Render(help)
}

// syncViewport rebuilds the viewport content for the current mode.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}

	switch m.mode {
	case viewPlanning:
		m.viewport.SetContent("")
	case viewReview:
		m.viewport.SetContent(m.renderPlans())
		m.ensureCursorVisible()
	case viewApplying:
		m.viewport.SetContent(strings.Join(m.applyLog, "\n"))
		m.viewport.GotoBottom()
	case viewDone:
		m.viewport.SetContent(m.renderSummary())
		m.viewport.GotoTop()
	}
}

// ensureCursorVisible scrolls the review list so the cursor line stays on
// screen. Each plan renders as exactly one line, so the cursor index is
// also its line number.
func (m *Model) ensureCursorVisible() {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	if m.cursor < top {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) renderPlans() string {
	var sb strings.Builder

	pathWidth := (m.width - 12) / 2
	if pathWidth < 20 {
		pathWidth = 20
	}

	for i, plan := range m.plan.Plans {
		badge := movieBadgeStyle.Render("MOV")
		if plan.Type == naming.MediaTypeTV {
			badge = tvBadgeStyle.Render(" TV")
		}

		line := fmt.Sprintf("%s  %s → %s",
			badge,
			TruncateString(m.relSource(plan), pathWidth),
			TruncateString(m.relDest(plan), pathWidth))

		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> ") + line)
		} else {
			sb.WriteString("  " + line)
		}
		if i < len(m.plan.Plans)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// relSource shows the source relative to the incoming root.
func (m Model) relSource(plan library.MovePlan) string {
	if rel, err := filepath.Rel(m.cfg.Folders.Incoming, plan.Source); err == nil {
		return rel
	}
	return plan.Source
}

// relDest shows the destination relative to its library root.
func (m Model) relDest(plan library.MovePlan) string {
	root := m.cfg.Folders.Movies
	if plan.Type == naming.MediaTypeTV {
		root = m.cfg.Folders.TV
	}
	if rel, err := filepath.Rel(root, plan.Dest); err == nil {
		return rel
	}
	return plan.Dest
}

func (m Model) renderSummary() string {
	var sb strings.Builder

	if m.err != nil {
		sb.WriteString(errorStyle.Render("scan failed: " + m.err.Error()))
		return sb.String()
	}

	sb.WriteString(headerStyle.Render("SUMMARY") + "\n\n")
	sb.WriteString(fmt.Sprintf("  Scanned:  %d video files\n", m.stats.Scanned))
	sb.WriteString(fmt.Sprintf("  Moved:    %d (%d tv, %d movies)\n",
		m.stats.Moved(), m.stats.MovedTV, m.stats.MovedMovies))
	sb.WriteString(fmt.Sprintf("  Skipped:  %d\n", m.stats.Skipped))
	sb.WriteString(fmt.Sprintf("  Failed:   %d\n", m.stats.Failures))
	sb.WriteString(fmt.Sprintf("  Cleaned:  %d directories\n", m.stats.DirsRemoved))

	if len(m.failures) > 0 {
		sb.WriteString("\n" + errorStyle.Render("Failures:") + "\n")
		for _, f := range m.failures {
			sb.WriteString("  " + errorStyle.Render("✗ ") + f + "\n")
		}
	}

	return sb.String()
}
