package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Gold       = lipgloss.Color("#E6C79C")
	Cream      = lipgloss.Color("#FEF4EF")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LinkStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Underline(true)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Gold).
			Bold(true).
			Padding(0, 2)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)
)

// Card and list styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Gold).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Gold).
			Bold(true).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(SlateDark).
				Background(White).
				Bold(true).
				Padding(0, 2)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	SheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(Gold).
			Padding(0, 2)
)

// Like indicator
const (
	LikedChar   = "♥"
	UnlikedChar = "♡"
)

var (
	LikedStyle   = lipgloss.NewStyle().Foreground(Red)
	UnlikedStyle = lipgloss.NewStyle().Foreground(LightGray)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Gold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Gold)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Gold).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Gold).
				Bold(true)
)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 3 {
		return string(r[:min(width, len(r))])
	}
	return string(r[:min(width-3, len(r))]) + "..."
}

// RenderLike renders the heart for a liked flag
func RenderLike(liked int) string {
	if liked == 1 {
		return LikedStyle.Render(LikedChar)
	}
	return UnlikedStyle.Render(UnlikedChar)
}

// RenderHighlighted renders s with the runes at matched positions highlighted
func RenderHighlighted(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if set[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// RenderHelp renders a footer of key/description pairs
func RenderHelp(pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, HelpKeyStyle.Render(p[0])+" "+HelpDescStyle.Render(p[1]))
	}
	return strings.Join(parts, HelpDescStyle.Render("  •  "))
}
