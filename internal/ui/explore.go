package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const readyPollInterval = 100 * time.Millisecond

// RunExplorer lets the user type queries and see suggestions, expansions,
// intent and dish structure as they type. Without a terminal it reads one
// query per input line and prints a plain snapshot for each.
//
// ready reports whether the tokenizers have finished loading; nil means
// always ready.
func RunExplorer(ctx context.Context, cfg Config, lookup LookupFunc, ready func() bool) error {
	styles := cfg.Styles()
	if !cfg.Interactive() {
		return runPlain(ctx, cfg, lookup, styles)
	}

	model := newExploreModel(lookup, ready, styles)

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if f, ok := cfg.Output.(*os.File); ok {
		opts = append(opts, tea.WithOutput(f))
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

func runPlain(ctx context.Context, cfg Config, lookup LookupFunc, styles Styles) error {
	if cfg.Input == nil {
		return nil
	}

	scanner := bufio.NewScanner(cfg.Input)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		_, _ = fmt.Fprintf(cfg.Output, "%s %s\n", styles.Header.Render(">"), query)
		_, _ = fmt.Fprint(cfg.Output, RenderSnapshot(lookup(query), styles))
		_, _ = fmt.Fprintln(cfg.Output)
	}
	return scanner.Err()
}

type readyTickMsg time.Time

func readyTickCmd() tea.Cmd {
	return tea.Tick(readyPollInterval, func(t time.Time) tea.Msg {
		return readyTickMsg(t)
	})
}

// exploreModel is the bubbletea model behind RunExplorer.
type exploreModel struct {
	input    textinput.Model
	spinner  spinner.Model
	styles   Styles
	lookup   LookupFunc
	ready    func() bool
	snapshot Snapshot
	warming  bool
	width    int
	quitting bool
}

func newExploreModel(lookup LookupFunc, ready func() bool, styles Styles) *exploreModel {
	ti := textinput.New()
	ti.Placeholder = "红烧牛肉面, low calorie lunch..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Active

	return &exploreModel{
		input:   ti,
		spinner: s,
		styles:  styles,
		lookup:  lookup,
		ready:   ready,
		warming: ready != nil && !ready(),
	}
}

// Init implements tea.Model.
func (m *exploreModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.warming {
		cmds = append(cmds, m.spinner.Tick, readyTickCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-8)
		return m, nil

	case readyTickMsg:
		if m.ready == nil || m.ready() {
			m.warming = false
			// tokenizer-backed results may differ from the fallback ones
			m.refresh()
			return m, nil
		}
		return m, readyTickCmd()

	case spinner.TickMsg:
		if !m.warming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *exploreModel) refresh() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || m.lookup == nil {
		m.snapshot = Snapshot{}
		return
	}
	m.snapshot = m.lookup(query)
	m.snapshot.Query = query
}

// View implements tea.Model.
func (m *exploreModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("foodindex explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.warming {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Label.Render(" loading tokenizers, using fallback segmentation"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	panel := m.styles.Panel
	if m.width > 4 {
		panel = panel.Width(m.width - 4)
	}
	b.WriteString(panel.Render(strings.TrimRight(RenderSnapshot(m.snapshot, m.styles), "\n")))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("esc to quit"))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
