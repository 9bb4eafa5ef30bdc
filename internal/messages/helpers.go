package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

// MessageType selects how a status line is rendered
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading
)

// StatusMsg is a one-line outcome shown in the picker's status bar
type StatusMsg struct {
	Message string
	Type    MessageType
}

var hints = map[kubeconfig.ErrorKind]string{
	kubeconfig.KindNotFound:                  "set KUBECONFIG or pass --kubeconfig to point at an existing file",
	kubeconfig.KindEmptyConfig:               "the file is blank; restore it from a backup or recreate it",
	kubeconfig.KindEmptyContent:              "nothing was written; the file was left unchanged",
	kubeconfig.KindParse:                     "check the YAML syntax of the kubeconfig",
	kubeconfig.KindRead:                      "the kubeconfig path must be a regular, readable file",
	kubeconfig.KindPermission:                "check file permissions, e.g. chmod 600 on the kubeconfig",
	kubeconfig.KindDiskSpace:                 "free some disk space and retry; a .backup copy was kept",
	kubeconfig.KindWrite:                     "retry; if a .backup file exists next to the kubeconfig it holds the previous version",
	kubeconfig.KindContextNotFound:           "run 'kctx list' to see available contexts",
	kubeconfig.KindAlreadyExists:             "choose a different context name",
	kubeconfig.KindCannotDeleteActiveContext: "switch to another context with 'kctx use' first",
}

// Hint returns the suggested next step for an error kind, or ""
func Hint(kind kubeconfig.ErrorKind) string {
	return hints[kind]
}

// ForError formats err for people, adding a hint when one applies
func ForError(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(kubeconfig.KindOf(err)); hint != "" {
		return fmt.Sprintf("%v (%s)", err, hint)
	}
	return err.Error()
}

// ErrorCmd returns a tea.Cmd that produces an error status message for err
func ErrorCmd(err error) tea.Cmd {
	msg := ForError(err)
	return func() tea.Msg {
		return StatusMsg{Message: msg, Type: MessageTypeError}
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
//
// Example:
//
//	return messages.SuccessCmd("Switched to %s", name)
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg{Message: msg, Type: MessageTypeSuccess}
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg{Message: msg, Type: MessageTypeInfo}
	}
}
