package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/tui/styles"
)

const (
	contactName = iota
	contactEmail
	contactMessage
	contactSend
	contactFocusCount
)

// ContactForm is the contact screen's name, email and message form
type ContactForm struct {
	active  bool
	busy    bool
	focus   int
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
}

// NewContactForm creates an inactive contact form
func NewContactForm() ContactForm {
	ta := textarea.New()
	ta.Placeholder = "Your Message"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetWidth(40)
	ta.SetHeight(5)

	return ContactForm{
		name:    newFormInput("Your Name", 100),
		email:   newFormInput("Your Email", 254),
		message: ta,
	}
}

// Activate gives the form keyboard focus, starting at the first empty field
func (f *ContactForm) Activate() tea.Cmd {
	f.active = true
	switch {
	case f.name.Value() == "":
		return f.setFocus(contactName)
	case f.email.Value() == "":
		return f.setFocus(contactEmail)
	default:
		return f.setFocus(contactMessage)
	}
}

// Deactivate releases keyboard focus
func (f *ContactForm) Deactivate() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// IsActive returns whether the form has keyboard focus
func (f ContactForm) IsActive() bool {
	return f.active
}

// SetBusy marks a send in flight
func (f *ContactForm) SetBusy(busy bool) {
	f.busy = busy
}

// SetWidth resizes the inputs
func (f *ContactForm) SetWidth(width int) {
	w := max(20, min(width-4, 72))
	f.name.Width = w - 2
	f.email.Width = w - 2
	f.message.SetWidth(w)
}

// Message returns the form contents
func (f ContactForm) Message() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

// Reset clears every field
func (f *ContactForm) Reset() {
	f.name.SetValue("")
	f.email.SetValue("")
	f.message.SetValue("")
}

func (f *ContactForm) setFocus(i int) tea.Cmd {
	f.focus = (i + contactFocusCount) % contactFocusCount
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch f.focus {
	case contactName:
		return f.name.Focus()
	case contactEmail:
		return f.email.Focus()
	case contactMessage:
		return f.message.Focus()
	}
	return nil
}

// Update handles input events, returns (form, cmd, submitted)
func (f ContactForm) Update(msg tea.Msg) (ContactForm, tea.Cmd, bool) {
	if !f.active {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.Deactivate()
			return f, nil, false
		case "tab":
			return f, f.setFocus(f.focus + 1), false
		case "shift+tab":
			return f, f.setFocus(f.focus - 1), false
		case "ctrl+s":
			return f, nil, !f.busy
		case "enter":
			switch f.focus {
			case contactSend:
				return f, nil, !f.busy
			case contactName, contactEmail:
				return f, f.setFocus(f.focus + 1), false
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case contactName:
		f.name, cmd = f.name.Update(msg)
	case contactEmail:
		f.email, cmd = f.email.Update(msg)
	case contactMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd, false
}

// View renders the form
func (f ContactForm) View() string {
	send := styles.ButtonStyle.Render("Send")
	if f.active && f.focus == contactSend {
		send = styles.FocusedButtonStyle.Render("Send")
	}
	if f.busy {
		send = styles.DimStyle.Render("Sending...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		f.name.View(),
		"",
		f.email.View(),
		"",
		f.message.View(),
		"",
		send,
	)
}
