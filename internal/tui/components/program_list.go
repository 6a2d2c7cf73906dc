package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/tui/styles"
)

// Layout constants for the program list
const (
	// Each program renders as a bordered card of this many lines
	ProgramCardHeight = 5

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// ProgramList is a scrollable list of program cards with an optional filter bar
type ProgramList struct {
	programs []domain.Program

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
}

// NewProgramList creates an empty program list
func NewProgramList() ProgramList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.AccentStyle

	return ProgramList{filterInput: ti}
}

// SetPrograms replaces the listed programs, keeping the cursor on the same
// program when it is still present
func (l *ProgramList) SetPrograms(programs []domain.Program) {
	selectedID := ""
	if p, ok := l.Selected(); ok {
		selectedID = p.ID
	}

	l.programs = programs
	l.cursor = 0
	for i, p := range programs {
		if p.ID == selectedID {
			l.cursor = i
			break
		}
	}
	l.ensureVisible()
}

// Programs returns the listed programs
func (l ProgramList) Programs() []domain.Program {
	return l.programs
}

// Selected returns the program under the cursor
func (l ProgramList) Selected() (domain.Program, bool) {
	if l.cursor < 0 || l.cursor >= len(l.programs) {
		return domain.Program{}, false
	}
	return l.programs[l.cursor], true
}

// SetSize sets the list dimensions
func (l *ProgramList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = max(10, width-4)
	l.recalcMaxVisible()
	l.ensureVisible()
}

// StartFilter opens the filter bar and focuses it
func (l *ProgramList) StartFilter() tea.Cmd {
	l.filterActive = true
	l.recalcMaxVisible()
	return l.filterInput.Focus()
}

// IsFiltering returns true if the filter bar is shown
func (l ProgramList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if the filter bar has keyboard focus
func (l ProgramList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// FilterQuery returns the current filter text
func (l ProgramList) FilterQuery() string {
	if !l.filterActive {
		return ""
	}
	return l.filterInput.Value()
}

// ClearFilter closes the filter bar
func (l *ProgramList) ClearFilter() {
	l.filterActive = false
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

// Update handles navigation and filter typing. It reports whether the
// filter query changed so the caller can re-filter.
func (l ProgramList) Update(msg tea.Msg) (ProgramList, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil, false
	}

	if l.IsFilterTyping() {
		switch keyMsg.String() {
		case "esc":
			l.ClearFilter()
			return l, nil, true
		case "enter":
			// Accept filter, blur input to allow navigation
			l.filterInput.Blur()
			return l, nil, false
		case "backspace":
			if l.filterInput.Value() == "" {
				l.ClearFilter()
				return l, nil, true
			}
		}

		before := l.filterInput.Value()
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		return l, cmd, before != l.filterInput.Value()
	}

	count := len(l.programs)
	if count == 0 {
		return l, nil, false
	}

	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < count-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = count - 1
	}
	l.ensureVisible()
	return l, nil, false
}

func (l *ProgramList) recalcMaxVisible() {
	lines := l.height - ScrollIndicatorLines
	if l.filterActive {
		lines--
	}
	l.maxVisible = max(1, lines/ProgramCardHeight)
}

func (l *ProgramList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible cards
func (l ProgramList) View() string {
	width := max(20, l.width)
	var b strings.Builder

	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	b.WriteString(header + "\n")

	end := min(l.offset+l.maxVisible, len(l.programs))
	for i := l.offset; i < end; i++ {
		b.WriteString(renderProgramCard(l.programs[i], i == l.cursor, width))
		b.WriteString("\n")
	}

	footer := " "
	if end < len(l.programs) {
		footer = styles.DimStyle.Render("↓ more")
	}
	b.WriteString(footer)

	if l.filterActive {
		b.WriteString("\n" + l.filterInput.View())
	}
	return b.String()
}

func renderProgramCard(p domain.Program, selected bool, width int) string {
	style := styles.CardStyle
	if selected {
		style = styles.SelectedCardStyle
	}
	inner := width - style.GetHorizontalFrameSize()

	name := styles.Truncate(p.Name, inner-2)
	title := styles.RenderLike(p.Liked) + " " + styles.TitleStyle.Render(name)
	if !selected {
		title = styles.RenderLike(p.Liked) + " " + styles.SubtitleStyle.Render(name)
	}

	lines := []string{
		title,
		styles.AccentStyle.Render(styles.Truncate(p.DisplayDate(), inner)),
		styles.DimStyle.Render(styles.Truncate(p.Day, inner)),
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}
