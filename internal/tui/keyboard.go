package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/config"
	"github.com/revenland/revenland/internal/tui/anim"
	"github.com/revenland/revenland/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.splash {
		m.splash = false
		cmd := m.activate(m.ui.StartRoute)
		return m, cmd
	}

	// Alerts are acknowledged before anything else reacts
	if m.alert.IsVisible() {
		if key.Matches(msg, Keys.Enter, Keys.Escape) || msg.String() == " " {
			m.alert.Hide()
		}
		return m, nil
	}

	if m.newsletter.IsVisible() {
		var cmd tea.Cmd
		var action components.ModalAction
		m.newsletter, cmd, action = m.newsletter.Update(msg)
		switch action {
		case components.ActionSubmit:
			cmd = m.submitNewsletter()
			return m, cmd
		case components.ActionClose:
			m.newsletter.Hide()
		}
		return m, cmd
	}

	if m.sheet.Visible() {
		if key.Matches(msg, Keys.Escape, Keys.Enter, Keys.About) {
			m.sheet.Close()
			cmd := m.startTicking()
			return m, cmd
		}
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.detailID != "" {
		return m.handleDetailKeys(msg)
	}

	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Home):
		cmd := m.switchTo(config.RouteHome)
		return m, cmd
	case key.Matches(msg, Keys.Program):
		cmd := m.switchTo(config.RouteProgram)
		return m, cmd
	case key.Matches(msg, Keys.Profile):
		cmd := m.switchTo(config.RouteProfile)
		return m, cmd
	case key.Matches(msg, Keys.Contact):
		cmd := m.switchTo(config.RouteContact)
		return m, cmd
	case key.Matches(msg, Keys.NextTab):
		cmd := m.switchTo(m.neighborRoute(1))
		return m, cmd
	case key.Matches(msg, Keys.PrevTab):
		cmd := m.switchTo(m.neighborRoute(-1))
		return m, cmd
	}

	switch m.route {
	case config.RouteHome:
		return m.handleHomeKeys(msg)
	case config.RouteProgram:
		return m.handleProgramKeys(msg)
	case config.RouteProfile:
		return m.handleProfileKeys(msg)
	case config.RouteContact:
		return m.handleContactKeys(msg)
	}
	return m, nil
}

// routeToInput forwards keys to a focused text input, returns (handled, model, cmd)
func (m Model) routeToInput(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.route == config.RouteHome && m.search.Focused():
		switch msg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.serviceCursor = 0
			return true, m, nil
		case "enter":
			m.search.Blur()
			return true, m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.serviceCursor = 0
		}
		return true, m, cmd

	case m.route == config.RouteProgram && m.programList.IsFilterTyping():
		var cmd tea.Cmd
		var changed bool
		m.programList, cmd, changed = m.programList.Update(msg)
		if changed {
			m.refreshProgramList()
		}
		return true, m, cmd

	case m.route == config.RouteContact && m.contact.IsActive():
		var cmd tea.Cmd
		var submitted bool
		m.contact, cmd, submitted = m.contact.Update(msg)
		if submitted {
			cmd = m.submitContact()
			return true, m, cmd
		}
		return true, m, cmd
	}
	return false, m, nil
}

func (m *Model) switchTo(route config.Route) tea.Cmd {
	if route == m.route {
		return nil
	}
	return m.activate(route)
}

func (m Model) neighborRoute(step int) config.Route {
	for i, r := range config.Routes {
		if r == m.route {
			n := len(config.Routes)
			return config.Routes[((i+step)%n+n)%n]
		}
	}
	return config.RouteProfile
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := len(m.CatalogSvc.SearchServices(m.search.Value())) + 1

	switch {
	case key.Matches(msg, Keys.Filter):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, Keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.serviceCursor = 0
		}
	case key.Matches(msg, Keys.Down):
		if m.serviceCursor < entries-1 {
			m.serviceCursor++
		}
	case key.Matches(msg, Keys.Up):
		if m.serviceCursor > 0 {
			m.serviceCursor--
		}
	case key.Matches(msg, Keys.Enter):
		// The last entry is the affiliation link
		if m.serviceCursor == entries-1 {
			cmd := m.activate(config.RouteContact)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleProgramKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		if m.programList.IsFiltering() {
			m.programList.ClearFilter()
			m.refreshProgramList()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		cmd := m.programList.StartFilter()
		return m, cmd

	case key.Matches(msg, Keys.Left):
		cmd := m.shiftMonth(-1)
		return m, cmd

	case key.Matches(msg, Keys.Right):
		cmd := m.shiftMonth(1)
		return m, cmd

	case key.Matches(msg, Keys.Refresh):
		m.loading = true
		return m, tea.Batch(LoadProgramsCmd(m.ctx, m.ProgramSvc, m.programGen), m.spinner.Tick)

	case key.Matches(msg, Keys.Enter):
		if p, ok := m.programList.Selected(); ok {
			m.detailID = p.ID
		}
		return m, nil

	case key.Matches(msg, Keys.Like):
		if p, ok := m.programList.Selected(); ok {
			cmd := m.toggleLike(p.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Share):
		if p, ok := m.programList.Selected(); ok {
			return m, ShareProgramCmd(m.ProgramSvc, p)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.programList, cmd, _ = m.programList.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape, Keys.Enter):
		m.detailID = ""
	case key.Matches(msg, Keys.Like):
		cmd := m.toggleLike(m.detailID)
		return m, cmd
	case key.Matches(msg, Keys.Share):
		if p, ok := m.ProgramSvc.Get(m.detailID); ok {
			return m, ShareProgramCmd(m.ProgramSvc, p)
		}
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profile := m.CatalogSvc.Profile()

	switch {
	case key.Matches(msg, Keys.Subscribe):
		cmd := m.newsletter.Show()
		return m, cmd
	case key.Matches(msg, Keys.About):
		m.sheet.Open()
		cmd := m.startTicking()
		return m, cmd
	case key.Matches(msg, Keys.Video):
		return m, PlayVideoCmd(m.Opener, profile.VideoURL)
	case key.Matches(msg, Keys.Down):
		if m.socialCursor < len(profile.Socials)-1 {
			m.socialCursor++
		}
	case key.Matches(msg, Keys.Up):
		if m.socialCursor > 0 {
			m.socialCursor--
		}
	case key.Matches(msg, Keys.Enter):
		if m.socialCursor < len(profile.Socials) {
			return m, OpenURLCmd(m.Opener, profile.Socials[m.socialCursor].URL)
		}
	}
	return m, nil
}

func (m Model) handleContactKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Edit) {
		cmd := m.contact.Activate()
		return m, cmd
	}
	return m, nil
}

// handleMouseMsg drags the about sheet and dismisses it on taps above it
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.sheet.Visible() || m.alert.IsVisible() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y < m.sheetRow() {
			m.sheet.Close()
			cmd := m.startTicking()
			return m, cmd
		}
		m.dragging = true
		m.dragFromRow = msg.Y
		return m, nil

	case tea.MouseActionMotion:
		if m.dragging {
			m.sheet.Drag(float64(msg.Y-m.dragFromRow) * anim.RowHeight)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.sheet.Release()
		cmd := m.startTicking()
		return m, cmd
	}
	return m, nil
}

// sheetRow is the screen row of the sheet's top edge
func (m Model) sheetRow() int {
	return int(m.sheet.Top() / anim.RowHeight)
}
