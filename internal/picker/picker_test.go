package picker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/kctx/internal/kubeconfig"
	"github.com/renato0307/kctx/internal/messages"
	"github.com/renato0307/kctx/internal/ui"
)

const pickerKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
clusters:
- name: kind
  cluster:
    server: https://127.0.0.1:6443
- name: eks
  cluster:
    server: https://eks.example.com
users:
- name: admin
  user:
    token: t
- name: sso
  user:
    exec:
      command: aws
contexts:
- name: dev
  context:
    cluster: kind
    user: admin
    namespace: team-a
- name: prod-eu
  context:
    cluster: eks
    user: sso
- name: prod-us
  context:
    cluster: eks
    user: sso
`

// newTestModel builds a picker over a temp kubeconfig and loads its contexts
func newTestModel(t *testing.T, opts ...Option) (*Model, *kubeconfig.Store) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(pickerKubeconfig), 0o600))
	store, err := kubeconfig.NewStore(path)
	require.NoError(t, err)

	m := New(store, ui.ThemeCharm(), opts...)
	m.Update(m.loadContexts()())
	return m, store
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func resultNames(m *Model) []string {
	out := []string{}
	for _, r := range m.Results() {
		out = append(out, r.Context.Name)
	}
	return out
}

func TestPickerLoadsContexts(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, []string{"dev", "prod-eu", "prod-us"}, resultNames(m))
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "dev", selected.Name)

	view := m.View()
	assert.Contains(t, view, "prod-eu")
	assert.Contains(t, view, "team-a")
	assert.Contains(t, view, "Exec (aws)")
}

func TestPickerShowsLoadingUntilContextsArrive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(pickerKubeconfig), 0o600))
	store, err := kubeconfig.NewStore(path)
	require.NoError(t, err)

	m := New(store, ui.ThemeCharm())
	assert.Contains(t, m.View(), "Loading contexts")

	_, cmd := m.Update(m.loadContexts()())
	assert.NotContains(t, m.View(), "Loading contexts")
	require.NotNil(t, cmd)
	status, ok := cmd().(messages.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, messages.MessageTypeInfo, status.Type)
	assert.Contains(t, status.Message, "3 contexts")

	// Reloads after a switch do not repeat the summary
	_, cmd = m.Update(m.loadContexts()())
	assert.Nil(t, cmd)
}

func TestPickerFiltersAsYouType(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "prod")
	assert.Equal(t, []string{"prod-eu", "prod-us"}, resultNames(m))

	typeText(m, "zzz")
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), "no matching contexts")
}

func TestPickerNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ := m.Selected()
	assert.Equal(t, "prod-us", selected.Name, "cursor stops at the last row")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	selected, _ = m.Selected()
	assert.Equal(t, "prod-eu", selected.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	selected, _ = m.Selected()
	assert.Equal(t, "dev", selected.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	selected, _ = m.Selected()
	assert.Equal(t, "prod-us", selected.Name)
}

func TestPickerSwitchesContext(t *testing.T) {
	m, store := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, reload := m.Update(cmd())
	require.NotNil(t, reload)
	m.Update(reload())

	doc, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "prod-eu", doc.CurrentContext)
	assert.Equal(t, []string{"prod-eu"}, store.Recent().List())

	assert.Contains(t, m.View(), "Switched to prod-eu")
	assert.Contains(t, m.View(), "recent: prod-eu")

	selected, _ := m.Selected()
	assert.Equal(t, "prod-eu", selected.Name, "selection survives the reload")
	assert.True(t, selected.Current)
}

func TestPickerCopiesName(t *testing.T) {
	var copied string
	m, _ := newTestModel(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "dev", copied)
	assert.Contains(t, m.View(), "Copied dev to clipboard")
}

func TestPickerCopyFailure(t *testing.T) {
	m, _ := newTestModel(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	msg := cmd()
	status, ok := msg.(messages.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, messages.MessageTypeError, status.Type)
}

func TestPickerEscape(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "prod")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "first esc clears the query")
	assert.Len(t, m.Results(), 3)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPickerLoadError(t *testing.T) {
	store, err := kubeconfig.NewStore(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	m := New(store, ui.ThemeCharm())
	m.Update(m.loadContexts()())

	assert.Contains(t, m.View(), "kubeconfig not found")
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestPickerScrollsWithSmallWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: reservedLines + 1})

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view := m.View()
	assert.Contains(t, view, "prod-us")
	assert.NotContains(t, view, "team-a")
}
