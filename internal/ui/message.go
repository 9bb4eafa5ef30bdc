package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kctx/internal/messages"
)

// RenderMessage renders a status line styled by its type.
// Long messages are truncated to fit the terminal width; a width of zero
// (size not known yet) disables truncation.
func RenderMessage(text string, msgType messages.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	if width > 0 {
		// prefix (2) plus a small margin
		maxLength := max(width-7, 20)
		if runes := []rune(text); len(runes) > maxLength {
			text = string(runes[:maxLength-1]) + "…"
		}
	}

	var color lipgloss.AdaptiveColor
	switch msgType {
	case messages.MessageTypeSuccess:
		color = theme.MessageSuccess
	case messages.MessageTypeError:
		color = theme.MessageError
	case messages.MessageTypeLoading:
		color = theme.MessageLoading
	default:
		color = theme.MessageInfo
	}

	return lipgloss.NewStyle().Foreground(color).Render("⏺ " + text)
}
