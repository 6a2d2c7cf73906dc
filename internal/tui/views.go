package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/revenland/revenland/internal/config"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/tui/components"
	"github.com/revenland/revenland/internal/tui/styles"
)

// Shake offsets are nominal px; this many px move the button one column
const shakePxPerColumn = 5

// View renders the entire UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.splash {
		return m.renderSplash()
	}

	body := lipgloss.NewStyle().
		Width(m.Width).
		Height(max(1, m.Height-ChromeHeight)).
		MaxHeight(max(1, m.Height-ChromeHeight)).
		Padding(0, 2).
		Render(m.renderRoute())

	view := lipgloss.JoinVertical(lipgloss.Left,
		components.RenderTabBar(tabs, string(m.route)),
		"",
		body,
		m.renderFooter(),
	)

	if m.route == config.RouteProfile && m.sheet.Visible() {
		view = m.overlaySheet(view)
	}

	// Overlays, highest priority first
	switch {
	case m.alert.IsVisible():
		return m.place(m.alert.View())
	case m.newsletter.IsVisible():
		return m.place(m.newsletter.View())
	case m.detailID != "":
		if p, ok := m.ProgramSvc.Get(m.detailID); ok {
			return m.place(components.RenderProgramDetail(p, m.Width-12))
		}
	}
	return view
}

func (m Model) place(modal string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderSplash() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.HeaderStyle.Render("Welcome to the RevenLand!"),
		"",
		m.spinner.View(),
	)
	return m.place(content)
}

func (m Model) renderRoute() string {
	switch m.route {
	case config.RouteHome:
		return m.renderHome()
	case config.RouteProgram:
		return m.renderProgram()
	case config.RouteContact:
		return m.renderContact()
	}
	return m.renderProfile()
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("Revenland") + "\n\n")
	b.WriteString(m.search.View() + "\n\n")
	b.WriteString(styles.TitleStyle.Render("Our Services") + "\n")

	matches := m.CatalogSvc.SearchServices(m.search.Value())
	if len(matches) == 0 {
		b.WriteString(styles.DimStyle.Render("No services match your search.") + "\n")
	}
	width := max(20, m.Width-8)
	for i, match := range matches {
		selected := i == m.serviceCursor
		base := styles.NormalItemStyle.UnsetPadding()
		if selected {
			base = styles.TitleStyle
		}
		cursor := "  "
		if selected {
			cursor = styles.AccentStyle.Render("▸ ")
		}
		b.WriteString(cursor + styles.RenderHighlighted(match.Service.Title, match.MatchedIndexes, base) + "\n")
		b.WriteString("  " + styles.DimStyle.Render(styles.Truncate(match.Service.Description, width)) + "\n")
	}

	b.WriteString("\n" + styles.TitleStyle.Render("Our Affiliation") + "\n")
	link := styles.LinkStyle.Render("Partner with us, get in touch")
	if m.serviceCursor == len(matches) {
		link = styles.AccentStyle.Render("▸ ") + link
	} else {
		link = "  " + link
	}
	b.WriteString(link)
	return b.String()
}

func (m Model) renderProgram() string {
	month := domain.MonthName(m.ProgramSvc.Month())
	nav := styles.DimStyle.Render("<  ") + styles.AccentStyle.Bold(true).Render(month) + styles.DimStyle.Render("  >")

	header := styles.HeaderStyle.Render("Programs") + "    " + nav
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var body string
	switch {
	case m.loading && len(m.programList.Programs()) == 0:
		body = styles.DimStyle.Render("Loading programs...")
	case len(m.programList.Programs()) == 0 && !m.programList.IsFiltering():
		body = styles.DimStyle.Render("No programs available for this month.")
	default:
		body = m.programList.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (m Model) renderProfile() string {
	profile := m.CatalogSvc.Profile()
	width := max(20, min(m.Width-8, 72))

	shift := max(0, 2+int(m.shakeOffset)/shakePxPerColumn)
	subscribe := strings.Repeat(" ", shift) + styles.ButtonStyle.Render("Subscribe")
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.HeaderStyle.Render("Company Profile"),
		subscribe,
	)

	about := styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("About Company"),
		lipgloss.NewStyle().Width(width-4).Foreground(styles.LightGray).Render(profile.Summary),
		styles.LinkStyle.Render("See More"),
	))

	var socials strings.Builder
	socials.WriteString(styles.TitleStyle.Render("Follow Us") + "\n")
	for i, s := range profile.Socials {
		line := fmt.Sprintf("%-9s %s", s.Platform, styles.DimStyle.Render(s.URL))
		if i == m.socialCursor {
			socials.WriteString(styles.AccentStyle.Render("▸ ") + line + "\n")
		} else {
			socials.WriteString("  " + line + "\n")
		}
	}

	video := styles.TitleStyle.Render("Company Video") + "\n" +
		styles.AccentStyle.Render("▶ ") + styles.DimStyle.Render(styles.Truncate(profile.VideoURL, width-2))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		about,
		"",
		strings.TrimRight(socials.String(), "\n"),
		"",
		video,
	)
}

func (m Model) renderContact() string {
	hint := styles.DimStyle.Render("press i to write a message")
	if m.contact.IsActive() {
		hint = styles.DimStyle.Render("tab next field • ctrl+s send • esc done")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderStyle.Render("Contact Us"),
		hint,
		"",
		m.contact.View(),
	)
}

// overlaySheet draws the about sheet over the bottom rows of view
func (m Model) overlaySheet(view string) string {
	row := m.sheetRow()
	if row >= m.Height {
		return view
	}
	rows := m.Height - max(0, row)
	profile := m.CatalogSvc.Profile()

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DimStyle.Render(strings.Repeat("─", 6)),
		styles.HeaderStyle.Render("About "+profile.Name),
		"",
		lipgloss.NewStyle().Width(max(10, m.Width-8)).Foreground(styles.Cream).Render(profile.About),
		"",
		styles.RenderHelp([2]string{"esc", "close"}, [2]string{"drag", "down to dismiss"}),
	)
	sheet := styles.SheetStyle.
		Width(max(10, m.Width-2)).
		Height(rows).
		MaxHeight(rows).
		Render(content)

	lines := strings.Split(view, "\n")
	for len(lines) < m.Height {
		lines = append(lines, "")
	}
	sheetLines := strings.Split(sheet, "\n")
	start := max(0, row)
	for i := 0; i < len(sheetLines) && start+i < len(lines); i++ {
		lines[start+i] = sheetLines[i]
	}
	return strings.Join(lines[:m.Height], "\n")
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		return styles.SuccessStyle.Render(" " + m.StatusMsg)
	}
	return " " + m.renderHelp()
}

func (m Model) renderHelp() string {
	quit := [2]string{"q", "quit"}
	switch m.route {
	case config.RouteHome:
		return styles.RenderHelp([2]string{"/", "search"}, [2]string{"j/k", "move"}, [2]string{"enter", "open"}, [2]string{"1-4", "tabs"}, quit)
	case config.RouteProgram:
		return styles.RenderHelp([2]string{"h/l", "month"}, [2]string{"space", "like"}, [2]string{"s", "share"}, [2]string{"enter", "details"}, [2]string{"/", "filter"}, [2]string{"r", "refresh"}, quit)
	case config.RouteContact:
		return styles.RenderHelp([2]string{"i", "write"}, [2]string{"1-4", "tabs"}, quit)
	}
	return styles.RenderHelp([2]string{"n", "subscribe"}, [2]string{"m", "about"}, [2]string{"v", "video"}, [2]string{"enter", "open social"}, quit)
}
