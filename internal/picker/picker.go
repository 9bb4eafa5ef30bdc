// Package picker implements the interactive context picker: a search box over
// the kubeconfig contexts that switches context on enter.
package picker

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kctx/internal/keyboard"
	"github.com/renato0307/kctx/internal/kubeconfig"
	"github.com/renato0307/kctx/internal/messages"
	"github.com/renato0307/kctx/internal/ui"
)

// reservedLines is the number of lines used by title, prompt, status and footer
const reservedLines = 6

type contextsLoadedMsg struct {
	contexts []kubeconfig.KubernetesContext
	err      error
}

type contextSwitchedMsg struct {
	name string
	err  error
}

// Model is the bubbletea model of the picker
type Model struct {
	store *kubeconfig.Store
	theme *ui.Theme
	keys  *keyboard.Keys
	copy  func(string) error

	input    textinput.Model
	contexts []kubeconfig.KubernetesContext
	results  []kubeconfig.SearchResult
	cursor   int
	offset   int
	status   messages.StatusMsg
	loaded   bool
	width    int
	height   int
}

// Option configures a Model
type Option func(*Model)

// WithKeys overrides the default key bindings
func WithKeys(keys *keyboard.Keys) Option {
	return func(m *Model) { m.keys = keys }
}

// WithClipboard overrides how context names are copied
func WithClipboard(copyFn func(string) error) Option {
	return func(m *Model) { m.copy = copyFn }
}

// New creates a picker over store
func New(store *kubeconfig.Store, theme *ui.Theme, opts ...Option) *Model {
	input := textinput.New()
	input.Placeholder = "search contexts"
	input.Prompt = "> "
	input.PromptStyle = theme.Prompt
	input.Focus()

	m := &Model{
		store: store,
		theme: theme,
		keys:  keyboard.Default(),
		copy:  CopyToClipboard,
		input: input,
	}
	m.status = messages.StatusMsg{Message: "Loading contexts…", Type: messages.MessageTypeLoading}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init loads the contexts
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadContexts())
}

func (m *Model) loadContexts() tea.Cmd {
	return func() tea.Msg {
		contexts, err := m.store.Contexts()
		return contextsLoadedMsg{contexts: contexts, err: err}
	}
}

func (m *Model) switchTo(name string) tea.Cmd {
	return func() tea.Msg {
		err := m.store.SwitchContext(context.Background(), name)
		return contextSwitchedMsg{name: name, err: err}
	}
}

func (m *Model) copyName(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.copy(name); err != nil {
			return messages.ErrorCmd(err)()
		}
		return messages.SuccessCmd("Copied %s to clipboard", name)()
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.clampCursor()
		return m, nil

	case contextsLoadedMsg:
		if msg.err != nil {
			m.status = messages.StatusMsg{Message: messages.ForError(msg.err), Type: messages.MessageTypeError}
			return m, nil
		}
		first := !m.loaded
		m.loaded = true
		m.contexts = msg.contexts
		m.refilter()
		if first {
			m.status = messages.StatusMsg{}
			return m, messages.InfoCmd("%d contexts in %s", len(msg.contexts), m.store.Path())
		}
		return m, nil

	case contextSwitchedMsg:
		if msg.err != nil {
			m.status = messages.StatusMsg{Message: messages.ForError(msg.err), Type: messages.MessageTypeError}
			return m, nil
		}
		m.status = messages.StatusMsg{Message: "Switched to " + msg.name, Type: messages.MessageTypeSuccess}
		return m, m.loadContexts()

	case messages.StatusMsg:
		m.status = msg
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg.String()); handled {
			return m, cmd
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) handleKey(key string) (tea.Cmd, bool) {
	switch {
	case key == m.keys.Quit:
		return tea.Quit, true

	case key == m.keys.Back:
		if m.input.Value() == "" {
			return tea.Quit, true
		}
		m.input.SetValue("")
		m.refilter()
		return nil, true

	case keyboard.Matches(key, m.keys.Up...):
		m.cursor--
		m.clampCursor()
		return nil, true

	case keyboard.Matches(key, m.keys.Down...):
		m.cursor++
		m.clampCursor()
		return nil, true

	case key == m.keys.JumpTop:
		m.cursor = 0
		m.clampCursor()
		return nil, true

	case key == m.keys.JumpBottom:
		m.cursor = len(m.results) - 1
		m.clampCursor()
		return nil, true

	case key == m.keys.Switch:
		if selected, ok := m.Selected(); ok {
			return m.switchTo(selected.Name), true
		}
		return nil, true

	case key == m.keys.Copy:
		if selected, ok := m.Selected(); ok {
			return m.copyName(selected.Name), true
		}
		return nil, true
	}
	return nil, false
}

// refilter reruns the search for the current query and keeps the cursor on
// the same context when it is still listed
func (m *Model) refilter() {
	selected, hadSelection := m.Selected()

	m.results = kubeconfig.SearchAndFilterContexts(m.contexts, kubeconfig.SearchFilters{
		Query: m.input.Value(),
	})

	m.cursor = 0
	if hadSelection {
		for i, r := range m.results {
			if r.Context.Name == selected.Name {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if visible > 0 && m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *Model) visibleRows() int {
	if m.height == 0 {
		return len(m.results)
	}
	return max(m.height-reservedLines, 1)
}

// Selected returns the context under the cursor
func (m *Model) Selected() (kubeconfig.KubernetesContext, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return kubeconfig.KubernetesContext{}, false
	}
	return m.results[m.cursor].Context, true
}

// Results returns the contexts currently listed, best match first
func (m *Model) Results() []kubeconfig.SearchResult {
	return m.results
}

// View renders the picker
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("kctx"))
	b.WriteString(" ")
	b.WriteString(m.theme.Detail.Render(m.store.Path()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
	case m.loaded && len(m.results) == 0:
		b.WriteString(m.theme.Detail.Render("  no matching contexts"))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderRows())
	}

	if m.status.Message != "" {
		b.WriteString(ui.RenderMessage(m.status.Message, m.status.Type, m.theme, m.width))
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderRows() string {
	nameWidth, clusterWidth := 0, 0
	for _, r := range m.results {
		nameWidth = max(nameWidth, lipgloss.Width(r.Context.Name))
		clusterWidth = max(clusterWidth, lipgloss.Width(r.Context.Cluster))
	}

	end := min(m.offset+m.visibleRows(), len(m.results))

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		c := m.results[i].Context

		mark := "  "
		if c.Current {
			mark = m.theme.CurrentMark.Render("● ")
		}

		namespace := c.Namespace
		if namespace == "" {
			namespace = "-"
		}
		line := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, c.Name, clusterWidth, c.Cluster, namespace)

		style := m.theme.Row
		if i == m.cursor {
			style = m.theme.SelectedRow
		}
		b.WriteString(mark)
		b.WriteString(style.Render(line))
		b.WriteString(" ")
		b.WriteString(m.theme.Detail.Render(describe(c)))
		b.WriteString("\n")
	}
	return b.String()
}

// describe summarises how a context connects
func describe(c kubeconfig.KubernetesContext) string {
	parts := []string{c.UserAuthMethod}
	if d := c.ClusterDetails; d != nil {
		endpoint := string(d.Protocol)
		if d.Hostname != "" {
			endpoint += " " + d.Hostname + ":" + d.Port
		}
		if !d.IsSecure {
			endpoint += " (insecure)"
		}
		parts = append([]string{endpoint}, parts...)
	}
	return strings.Join(parts, " · ")
}

func (m *Model) renderFooter() string {
	help := "enter switch · ctrl+y copy · esc quit"
	if recent := m.store.Recent().List(); len(recent) > 0 {
		help = "recent: " + strings.Join(recent, ", ") + " · " + help
	}
	return m.theme.Footer.Render(help)
}
