package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/revenland/revenland/internal/tui/styles"
)

// ModalAction is what the user asked a form modal to do
type ModalAction int

const (
	ActionNone ModalAction = iota
	ActionSubmit
	ActionClose
)

const (
	newsletterName = iota
	newsletterEmail
	newsletterSubmit
	newsletterClose
	newsletterFocusCount
)

// NewsletterModal collects a name and email for the newsletter
type NewsletterModal struct {
	visible bool
	busy    bool
	focus   int
	name    textinput.Model
	email   textinput.Model
}

func newFormInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.Prompt = "› "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// NewNewsletterModal creates a new hidden newsletter modal
func NewNewsletterModal() NewsletterModal {
	return NewsletterModal{
		name:  newFormInput("Enter your name", 100),
		email: newFormInput("Enter your email", 254),
	}
}

// Show displays the modal, keeping any previously typed values
func (m *NewsletterModal) Show() tea.Cmd {
	m.visible = true
	m.busy = false
	return m.setFocus(newsletterName)
}

// Hide dismisses the modal
func (m *NewsletterModal) Hide() {
	m.visible = false
	m.busy = false
	m.name.Blur()
	m.email.Blur()
}

// Reset clears both fields
func (m *NewsletterModal) Reset() {
	m.name.SetValue("")
	m.email.SetValue("")
}

// SetBusy marks a submission in flight
func (m *NewsletterModal) SetBusy(busy bool) {
	m.busy = busy
}

// IsVisible returns whether the modal is shown
func (m NewsletterModal) IsVisible() bool {
	return m.visible
}

// Values returns the typed name and email
func (m NewsletterModal) Values() (name, email string) {
	return m.name.Value(), m.email.Value()
}

func (m *NewsletterModal) setFocus(i int) tea.Cmd {
	m.focus = (i + newsletterFocusCount) % newsletterFocusCount
	m.name.Blur()
	m.email.Blur()
	switch m.focus {
	case newsletterName:
		return m.name.Focus()
	case newsletterEmail:
		return m.email.Focus()
	}
	return nil
}

// Update handles input events, returns (modal, cmd, action)
func (m NewsletterModal) Update(msg tea.Msg) (NewsletterModal, tea.Cmd, ModalAction) {
	if !m.visible {
		return m, nil, ActionNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, nil, ActionClose
		case "tab", "down":
			return m, m.setFocus(m.focus + 1), ActionNone
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1), ActionNone
		case "enter":
			if m.focus == newsletterClose {
				return m, nil, ActionClose
			}
			if m.busy {
				return m, nil, ActionNone
			}
			return m, nil, ActionSubmit
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case newsletterName:
		m.name, cmd = m.name.Update(msg)
	case newsletterEmail:
		m.email, cmd = m.email.Update(msg)
	}
	return m, cmd, ActionNone
}

// View renders the newsletter modal
func (m NewsletterModal) View() string {
	if !m.visible {
		return ""
	}

	submit := styles.ButtonStyle.Render("Submit")
	if m.focus == newsletterSubmit {
		submit = styles.FocusedButtonStyle.Render("Submit")
	}
	if m.busy {
		submit = styles.DimStyle.Render("Submitting...")
	}
	closeBtn := styles.DimStyle.Render("Close")
	if m.focus == newsletterClose {
		closeBtn = styles.TitleStyle.Render("Close")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Subscribe to our Newsletter"),
		m.name.View(),
		m.email.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, submit, "   ", closeBtn),
	)

	return styles.ModalStyle.Width(40).Render(content)
}
