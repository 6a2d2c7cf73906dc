package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/config"
	"github.com/revenland/revenland/internal/docstore"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/service"
	"github.com/revenland/revenland/internal/tui/anim"
	"github.com/revenland/revenland/internal/tui/components"
	"github.com/revenland/revenland/internal/tui/styles"
)

// User-facing alert texts
const (
	alertFetchFailed     = "Failed to fetch programs. Please try again later."
	alertLikeFailed      = "Failed to update like status."
	alertShareFailed     = "Failed to share program."
	alertMissingFields   = "Please fill in both fields."
	alertInvalidEmail    = "Please enter a valid email address."
	alertEmptyMessage    = "Please enter a message."
	alertSubscribeFailed = "Failed to subscribe. Details: "
	alertSendFailed      = "Failed to send message. Details: "
	alertOpenFailed      = "Failed to open link."
	alertSubscribed      = "Thank you for subscribing!"
	alertMessageSent     = "Thank you! Your message has been sent."
)

// Vertical chrome: tab bar, spacer and footer
const ChromeHeight = 3

var tabs = []components.Tab{
	{Key: string(config.RouteHome), Label: "Home"},
	{Key: string(config.RouteProgram), Label: "Program"},
	{Key: string(config.RouteProfile), Label: "Company Profile"},
	{Key: string(config.RouteContact), Label: "Contact Us"},
}

// Services bundles what the screens talk to
type Services struct {
	Programs   *service.ProgramService
	Newsletter *service.NewsletterService
	Contact    *service.ContactService
	Catalog    *service.CatalogService
	Opener     domain.Opener
}

// Model is the main Bubble Tea model for the application
type Model struct {
	ctx    context.Context
	logger *slog.Logger
	now    func() time.Time
	ui     config.UIConfig

	// Services
	ProgramSvc    *service.ProgramService
	NewsletterSvc *service.NewsletterService
	ContactSvc    *service.ContactService
	CatalogSvc    *service.CatalogService
	Opener        domain.Opener

	// Dimensions
	Width  int
	Height int
	Ready  bool

	splash  bool
	spinner spinner.Model
	route   config.Route

	// Activation generations; results tagged with an older one are dropped
	programGen int
	profileGen int

	// Home
	search        textinput.Model
	serviceCursor int // len(matches) selects the affiliation link

	// Program
	programList components.ProgramList
	loading     bool
	detailID    string

	// Profile
	sheet        anim.Sheet
	dragging     bool
	dragFromRow  int
	shaking      bool
	shakeStart   time.Time
	shakeOffset  float64
	ticking      bool
	lastTick     time.Time
	socialCursor int
	newsletter   components.NewsletterModal

	// Contact
	contact components.ContactForm

	alert     components.Alert
	StatusMsg string
}

// NewModel creates a new application model
func NewModel(ctx context.Context, svcs Services, ui config.UIConfig, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if !ui.StartRoute.Valid() {
		ui.StartRoute = config.RouteProfile
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	search := textinput.New()
	search.Placeholder = "Search services..."
	search.Prompt = "⌕ "
	search.PromptStyle = styles.AccentStyle
	search.PlaceholderStyle = styles.DimStyle

	return Model{
		ctx:           ctx,
		logger:        logger,
		now:           time.Now,
		ui:            ui,
		ProgramSvc:    svcs.Programs,
		NewsletterSvc: svcs.Newsletter,
		ContactSvc:    svcs.Contact,
		CatalogSvc:    svcs.Catalog,
		Opener:        svcs.Opener,
		splash:        ui.SplashDuration > 0,
		spinner:       sp,
		route:         ui.StartRoute,
		search:        search,
		programList:   components.NewProgramList(),
		sheet:         anim.NewSheet(0),
		newsletter:    components.NewNewsletterModal(),
		contact:       components.NewContactForm(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.splash {
		return tea.Batch(m.spinner.Tick, SplashCmd(m.ui.SplashDuration))
	}
	return func() tea.Msg { return SplashDoneMsg{} }
}

// Route returns the active screen
func (m Model) Route() config.Route {
	return m.route
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case spinner.TickMsg:
		if !m.splash && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SplashDoneMsg:
		m.splash = false
		cmd := m.activate(m.ui.StartRoute)
		return m, cmd

	case ProgramsRestoredMsg:
		if msg.Gen == m.programGen {
			m.refreshProgramList()
		}
		return m, nil

	case ProgramsLoadedMsg:
		if msg.Gen != m.programGen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.logger.Error("program fetch failed", "error", msg.Err)
			m.alert.ShowError(alertFetchFailed)
			return m, nil
		}
		m.refreshProgramList()
		return m, nil

	case LikeCommittedMsg:
		m.refreshProgramList()
		if msg.Err != nil && msg.Gen == m.programGen {
			m.alert.ShowError(alertLikeFailed)
		}
		return m, nil

	case ProgramSharedMsg:
		if msg.Err != nil {
			m.alert.ShowError(alertShareFailed)
			return m, nil
		}
		m.StatusMsg = "Copied to clipboard"
		return m, ClearStatusCmd(2 * time.Second)

	case SubscribedMsg:
		m.newsletter.SetBusy(false)
		if msg.Err != nil {
			m.alert.ShowError(subscribeAlert(msg.Err))
			return m, nil
		}
		m.alert.ShowInfo(alertSubscribed)
		m.newsletter.Reset()
		m.newsletter.Hide()
		return m, nil

	case MessageSentMsg:
		m.contact.SetBusy(false)
		if msg.Err != nil {
			m.alert.ShowError(sendAlert(msg.Err))
			return m, nil
		}
		m.alert.ShowInfo(alertMessageSent)
		m.contact.Reset()
		m.contact.Deactivate()
		return m, nil

	case OpenedMsg:
		if msg.Err != nil {
			m.logger.Error("open failed", "url", msg.URL, "error", msg.Err)
			m.alert.ShowError(alertOpenFailed)
		}
		return m, nil

	case ShakeMsg:
		if msg.Gen != m.profileGen || m.route != config.RouteProfile {
			return m, nil
		}
		m.shaking = true
		m.shakeStart = m.now()
		tick := m.startTicking()
		return m, tea.Batch(ShakeCmd(m.ui.ShakeInterval, m.profileGen), tick)

	case AnimTickMsg:
		return m.handleAnimTick(msg)

	case ClearStatusMsg:
		m.StatusMsg = ""
		return m, nil
	}

	return m, nil
}

// activate switches to route and starts what the screen needs
func (m *Model) activate(route config.Route) tea.Cmd {
	if !route.Valid() {
		route = config.RouteProfile
	}
	m.route = route
	m.detailID = ""
	m.search.Blur()
	m.contact.Deactivate()

	switch route {
	case config.RouteProgram:
		m.programGen++
		m.loading = true
		return tea.Batch(
			RestoreProgramsCmd(m.ProgramSvc, m.programGen),
			LoadProgramsCmd(m.ctx, m.ProgramSvc, m.programGen),
			m.spinner.Tick,
		)
	case config.RouteProfile:
		m.profileGen++
		if m.ui.ShakeInterval > 0 {
			return ShakeCmd(m.ui.ShakeInterval, m.profileGen)
		}
	}
	return nil
}

// shiftMonth changes the selected month and re-fetches
func (m *Model) shiftMonth(offset int) tea.Cmd {
	m.ProgramSvc.ShiftMonth(offset)
	m.refreshProgramList()
	m.loading = true
	return tea.Batch(LoadProgramsCmd(m.ctx, m.ProgramSvc, m.programGen), m.spinner.Tick)
}

func (m *Model) refreshProgramList() {
	m.programList.SetPrograms(m.ProgramSvc.Filter(m.programList.FilterQuery()))
}

// toggleLike applies the flip immediately and commits it in the background
func (m *Model) toggleLike(id string) tea.Cmd {
	t, err := m.ProgramSvc.Toggle(id)
	if err != nil {
		m.alert.ShowError(alertLikeFailed)
		return nil
	}
	m.refreshProgramList()
	return CommitLikeCmd(m.ctx, m.ProgramSvc, t, m.programGen)
}

// submitNewsletter validates locally before anything is sent
func (m *Model) submitNewsletter() tea.Cmd {
	name, email := m.newsletter.Values()
	if err := service.ValidateSubscriber(name, email); err != nil {
		m.alert.ShowError(subscribeAlert(err))
		return nil
	}
	m.newsletter.SetBusy(true)
	return SubscribeCmd(m.ctx, m.NewsletterSvc, name, email)
}

func (m *Model) submitContact() tea.Cmd {
	msg := m.contact.Message()
	if err := service.ValidateMessage(msg); err != nil {
		m.alert.ShowError(sendAlert(err))
		return nil
	}
	m.contact.SetBusy(true)
	return SendMessageCmd(m.ctx, m.ContactSvc, msg)
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.lastTick = m.now()
	return AnimTickCmd()
}

func (m Model) handleAnimTick(msg AnimTickMsg) (tea.Model, tea.Cmd) {
	dt := msg.At.Sub(m.lastTick)
	if dt <= 0 || dt > 4*anim.Frame() {
		dt = anim.Frame()
	}
	m.lastTick = msg.At

	m.sheet.Tick(dt)

	if m.shaking {
		elapsed := msg.At.Sub(m.shakeStart)
		m.shakeOffset = anim.ShakeOffset(elapsed)
		if anim.ShakeDone(elapsed) {
			m.shaking = false
			m.shakeOffset = 0
		}
	}

	if m.sheet.Animating() || m.shaking {
		return m, AnimTickCmd()
	}
	m.ticking = false
	return m, nil
}

func (m *Model) updateLayout() {
	bodyHeight := max(1, m.Height-ChromeHeight)
	m.sheet.Resize(float64(m.Height) * anim.RowHeight)
	m.programList.SetSize(min(m.Width-4, 80), bodyHeight-3)
	m.contact.SetWidth(m.Width)
	m.search.Width = max(10, min(m.Width-6, 60))
}

func subscribeAlert(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return alertMissingFields
	case errors.Is(err, domain.ErrInvalidEmail):
		return alertInvalidEmail
	}
	return alertSubscribeFailed + errorDetails(err)
}

func sendAlert(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return alertMissingFields
	case errors.Is(err, domain.ErrInvalidEmail):
		return alertInvalidEmail
	case errors.Is(err, domain.ErrEmptyMessage):
		return alertEmptyMessage
	}
	return alertSendFailed + errorDetails(err)
}

// errorDetails prefers the store's own message over the wrapped chain
func errorDetails(err error) string {
	var reqErr *docstore.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return err.Error()
}
