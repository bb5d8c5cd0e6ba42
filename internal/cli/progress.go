package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
)

// =============================================================================
// logReporter - plain log output
// =============================================================================

type logReporter struct {
	logger *log.Logger
	mu     sync.Mutex
}

func newLogReporter(l *log.Logger) *logReporter {
	return &logReporter{logger: l}
}

func (r *logReporter) started(path string) {
	r.logger.Debug("converting", "file", path)
}

func (r *logReporter) finished(fr fileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fr.Err != nil {
		printError("%s: %s", fr.Input, fr.Err)
		return
	}
	printSuccess("Converted %s", fr.Input)
	printFile(fr.Output)
	printStats(fr.Result.Stats.Components, len(fr.Result.Warnings), fr.Result.CacheInfo.Hit, fr.Duration)
	for _, w := range fr.Result.Warnings {
		printWarning("%s", w)
	}
}

// =============================================================================
// batchModel - interactive progress table
// =============================================================================

type fileStatus int

const (
	statusPending fileStatus = iota
	statusRunning
	statusDone
	statusFailed
)

// Messages sent to the program by the batch goroutines.
type (
	fileStartedMsg  struct{ path string }
	fileFinishedMsg struct{ result fileResult }
	batchDoneMsg    struct{ err error }
)

// fileRow is one line of the progress table.
type fileRow struct {
	path   string
	status fileStatus
	result fileResult
}

// batchModel is the bubbletea model for the interactive convert view.
type batchModel struct {
	rows     []fileRow
	index    map[string]int
	start    time.Time
	finished bool
	err      error
	aborted  bool
}

func newBatchModel(paths []string) batchModel {
	m := batchModel{
		rows:  make([]fileRow, len(paths)),
		index: make(map[string]int, len(paths)),
		start: time.Now(),
	}
	for i, p := range paths {
		m.rows[i] = fileRow{path: p}
		m.index[p] = i
	}
	return m
}

func (m batchModel) Init() tea.Cmd {
	return nil
}

func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = !m.finished
			return m, tea.Quit
		}
	case fileStartedMsg:
		if i, ok := m.index[msg.path]; ok {
			m.rows[i].status = statusRunning
		}
	case fileFinishedMsg:
		if i, ok := m.index[msg.result.Input]; ok {
			m.rows[i].result = msg.result
			m.rows[i].status = statusDone
			if msg.result.Err != nil {
				m.rows[i].status = statusFailed
			}
		}
	case batchDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

// counts returns how many files are done and how many failed.
func (m batchModel) counts() (done, failed int) {
	for _, r := range m.rows {
		switch r.status {
		case statusDone:
			done++
		case statusFailed:
			failed++
		}
	}
	return done, failed
}

func (m batchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Converting OBO files"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.rows))
	for i, r := range m.rows {
		rows[i] = []string{statusIcon(r.status), r.path, rowComponents(r), rowWarnings(r), rowDetail(r)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Axioms", "Warnings", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			switch m.rows[row].status {
			case statusFailed:
				return lipgloss.NewStyle().Foreground(colorRed)
			case statusDone:
				if col == 0 {
					return lipgloss.NewStyle().Foreground(colorGreen)
				}
				return lipgloss.NewStyle().Foreground(colorWhite)
			case statusRunning:
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	done, failed := m.counts()
	summary := fmt.Sprintf("  [%d/%d] %s", done+failed, len(m.rows), time.Since(m.start).Round(time.Millisecond))
	if failed > 0 {
		summary += fmt.Sprintf(" · %d failed", failed)
	}
	b.WriteString(StyleDim.Render(summary))
	b.WriteString("\n")
	return b.String()
}

func statusIcon(s fileStatus) string {
	switch s {
	case statusRunning:
		return "…"
	case statusDone:
		return iconSuccess
	case statusFailed:
		return iconError
	}
	return " "
}

func rowComponents(r fileRow) string {
	if r.result.Result == nil {
		return ""
	}
	return fmt.Sprintf("%d", r.result.Result.Stats.Components)
}

func rowWarnings(r fileRow) string {
	if r.result.Result == nil || len(r.result.Result.Warnings) == 0 {
		return ""
	}
	return fmt.Sprintf("%d", len(r.result.Result.Warnings))
}

func rowDetail(r fileRow) string {
	switch r.status {
	case statusFailed:
		return r.result.Err.Error()
	case statusDone:
		if r.result.Result != nil && r.result.Result.CacheInfo.Hit {
			return iconCached
		}
		return r.result.Duration.Round(time.Millisecond).String()
	}
	return ""
}

// =============================================================================
// teaReporter - forwards batch progress to a running program
// =============================================================================

type teaReporter struct {
	program *tea.Program
}

func (r teaReporter) started(path string) {
	r.program.Send(fileStartedMsg{path: path})
}

func (r teaReporter) finished(fr fileResult) {
	r.program.Send(fileFinishedMsg{result: fr})
}

// runInteractive converts paths while showing the progress table. Quitting the
// view cancels conversions still running.
func runInteractive(ctx context.Context, b *batch, paths []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newBatchModel(paths), tea.WithContext(ctx))
	go func() {
		err := b.run(ctx, paths, teaReporter{program: p})
		p.Send(batchDoneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	m := final.(batchModel)
	if m.aborted {
		return context.Canceled
	}
	return m.err
}
