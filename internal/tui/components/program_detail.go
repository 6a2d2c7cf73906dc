package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/tui/styles"
)

// RenderProgramDetail renders the detail modal for the live state of a program
func RenderProgramDetail(p domain.Program, width int) string {
	width = max(30, min(width, 64))
	text := lipgloss.NewStyle().Width(width).Foreground(styles.White)

	likes := fmt.Sprintf("%s %d Likes", styles.RenderLike(p.Liked), p.Liked)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DimStyle.Render(styles.Truncate(p.ImageURL, width)),
		"",
		likes+"    "+styles.AccentStyle.Render("⇪ share"),
		"",
		styles.ModalTitleStyle.Render(p.Name),
		styles.AccentStyle.Render(fmt.Sprintf("%s (%s)", p.DisplayDate(), p.Day)),
		"",
		text.Render(p.Details),
		"",
		styles.RenderHelp([2]string{"space", "like"}, [2]string{"s", "share"}, [2]string{"esc", "close"}),
	)
	return styles.ModalStyle.Render(content)
}
