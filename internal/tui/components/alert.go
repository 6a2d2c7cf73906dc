package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/revenland/revenland/internal/tui/styles"
)

// Alert is a blocking message box dismissed with enter or esc
type Alert struct {
	visible bool
	isErr   bool
	title   string
	message string
}

// ShowError displays an error alert
func (a *Alert) ShowError(message string) {
	a.visible, a.isErr, a.title, a.message = true, true, "Error", message
}

// ShowInfo displays a success alert
func (a *Alert) ShowInfo(message string) {
	a.visible, a.isErr, a.title, a.message = true, false, "Success", message
}

// Hide dismisses the alert
func (a *Alert) Hide() {
	a.visible = false
}

// IsVisible returns whether the alert is shown
func (a Alert) IsVisible() bool {
	return a.visible
}

// Message returns the alert text
func (a Alert) Message() string {
	return a.message
}

// IsError reports whether the alert is an error
func (a Alert) IsError() bool {
	return a.isErr
}

// View renders the alert box
func (a Alert) View() string {
	if !a.visible {
		return ""
	}
	title := styles.SuccessStyle.Bold(true).Render(a.title)
	border := styles.Green
	if a.isErr {
		title = styles.ErrorStyle.Bold(true).Render(a.title)
		border = styles.Red
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.NewStyle().Width(40).Foreground(styles.White).Render(a.message),
		"",
		styles.RenderHelp([2]string{"enter", "OK"}),
	)
	return styles.ModalStyle.BorderForeground(border).Render(content)
}
