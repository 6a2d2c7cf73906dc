package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/config"
	"github.com/revenland/revenland/internal/docstore"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/service"
	"github.com/revenland/revenland/internal/tui/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu          sync.Mutex
	programs    []domain.Program
	listErr     error
	setErr      error
	subErr      error
	sets        []int
	subscribers []domain.Subscriber
}

func (f *fakeBackend) ListPrograms(context.Context) ([]domain.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Program, len(f.programs))
	copy(out, f.programs)
	return out, nil
}

func (f *fakeBackend) SetLiked(_ context.Context, id string, liked int) (domain.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets = append(f.sets, liked)
	if f.setErr != nil {
		return domain.Program{}, f.setErr
	}
	for i := range f.programs {
		if f.programs[i].ID == id {
			f.programs[i].Liked = liked
			return f.programs[i], nil
		}
	}
	return domain.Program{}, domain.ErrNotFound
}

func (f *fakeBackend) CreateSubscriber(_ context.Context, name, email string) (domain.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subErr != nil {
		return domain.Subscriber{}, f.subErr
	}
	sub := domain.Subscriber{ID: "s1", Name: name, Email: email}
	f.subscribers = append(f.subscribers, sub)
	return sub, nil
}

func (f *fakeBackend) CreateMessage(_ context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	return msg, nil
}

type fakeOpener struct {
	opened []string
	played []string
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func (f *fakeOpener) Play(url string) error {
	f.played = append(f.played, url)
	return nil
}

func newTestModel(t *testing.T, route config.Route) (Model, *fakeBackend, *fakeOpener) {
	t.Helper()
	backend := &fakeBackend{programs: []domain.Program{
		{ID: "p1", Name: "Resume Clinic", Date: "2025-03-04", Day: "Tuesday", Details: "Bring your CV"},
		{ID: "p2", Name: "Mock Interviews", Date: "2025-03-18", Day: "Tuesday", Liked: 1},
		{ID: "p3", Name: "Career Fair", Date: "2025-05-02", Day: "Friday"},
	}}
	opener := &fakeOpener{}

	programs := service.NewProgramService(backend, nil, nil, nil)
	programs.SetMonth(2)

	m := NewModel(context.Background(), Services{
		Programs:   programs,
		Newsletter: service.NewNewsletterService(backend, nil),
		Contact:    service.NewContactService(backend, nil),
		Catalog:    service.NewCatalogService(),
		Opener:     opener,
	}, config.UIConfig{StartRoute: route, ShakeInterval: 5 * time.Second}, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, SplashDoneMsg{})
	return m, backend, opener
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// loadPrograms fetches synchronously and delivers the result like the runtime would
func loadPrograms(t *testing.T, m Model) Model {
	t.Helper()
	require.NoError(t, m.ProgramSvc.Load(context.Background()))
	return update(t, m, ProgramsLoadedMsg{Gen: m.programGen})
}

func TestSplashShowsWelcome(t *testing.T) {
	m := NewModel(context.Background(), Services{Catalog: service.NewCatalogService()},
		config.UIConfig{StartRoute: config.RouteHome, SplashDuration: time.Second}, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, m.View(), "Welcome to the RevenLand!")

	m = update(t, m, SplashDoneMsg{})
	assert.Equal(t, config.RouteHome, m.Route())
	assert.Contains(t, m.View(), "Our Services")
}

func TestSplashKeySkips(t *testing.T) {
	m := NewModel(context.Background(), Services{Catalog: service.NewCatalogService()},
		config.UIConfig{StartRoute: config.RouteContact, SplashDuration: time.Second}, nil)
	m = update(t, m, keyPress("x"))
	assert.False(t, m.splash)
	assert.Equal(t, config.RouteContact, m.Route())
}

func TestTabKeysSwitchRoutes(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteHome)

	m = update(t, m, keyPress("3"))
	assert.Equal(t, config.RouteProfile, m.Route())

	m = update(t, m, keyPress("tab"))
	assert.Equal(t, config.RouteContact, m.Route())

	m = update(t, m, keyPress("tab"))
	assert.Equal(t, config.RouteHome, m.Route(), "tab wraps around")
}

func TestProgramScreenShowsMonth(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Loading programs...")

	m = loadPrograms(t, m)
	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "March")
	assert.Contains(t, view, "Resume Clinic")
	assert.NotContains(t, view, "Career Fair")
}

func TestEmptyMonthMessage(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	m = loadPrograms(t, m)

	m, cmd := updateCmd(t, m, keyPress("l"))
	require.NotNil(t, cmd)
	m = loadPrograms(t, m)

	assert.Equal(t, 3, m.ProgramSvc.Month())
	assert.Contains(t, m.View(), "No programs available for this month.")
}

func TestStaleLoadIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	m = update(t, m, ProgramsLoadedMsg{Gen: m.programGen - 1, Err: errors.New("boom")})
	assert.False(t, m.alert.IsVisible())
	assert.True(t, m.loading)
}

func TestLoadFailureShowsAlert(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	m = update(t, m, ProgramsLoadedMsg{Gen: m.programGen, Err: errors.New("offline")})

	require.True(t, m.alert.IsVisible())
	assert.Equal(t, alertFetchFailed, m.alert.Message())

	m = update(t, m, keyPress("enter"))
	assert.False(t, m.alert.IsVisible())
}

func TestLikeShowsImmediately(t *testing.T) {
	m, backend, _ := newTestModel(t, config.RouteProgram)
	m = loadPrograms(t, m)

	m, cmd := updateCmd(t, m, keyPress(" "))
	require.NotNil(t, cmd)

	selected, ok := m.programList.Selected()
	require.True(t, ok)
	assert.Equal(t, "p1", selected.ID)
	assert.Equal(t, 1, selected.Liked, "flip is visible before the store answers")

	msg := cmd()
	committed, ok := msg.(LikeCommittedMsg)
	require.True(t, ok)
	require.NoError(t, committed.Err)
	assert.Equal(t, []int{1}, backend.sets)

	m = update(t, m, committed)
	assert.False(t, m.alert.IsVisible())
}

func TestLikeFailureRollsBackWithAlert(t *testing.T) {
	m, backend, _ := newTestModel(t, config.RouteProgram)
	m = loadPrograms(t, m)
	backend.setErr = errors.New("denied")

	m, cmd := updateCmd(t, m, keyPress(" "))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	require.True(t, m.alert.IsVisible())
	assert.Equal(t, alertLikeFailed, m.alert.Message())
	selected, _ := m.programList.Selected()
	assert.Equal(t, 0, selected.Liked)
}

func TestDetailModal(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	m = loadPrograms(t, m)

	m = update(t, m, keyPress("enter"))
	require.Equal(t, "p1", m.detailID)
	assert.Contains(t, m.View(), "Bring your CV")

	m, cmd := updateCmd(t, m, keyPress(" "))
	require.NotNil(t, cmd)
	p, _ := m.ProgramSvc.Get("p1")
	assert.Equal(t, 1, p.Liked)
	assert.Contains(t, m.View(), "1 Likes")

	m = update(t, m, keyPress("esc"))
	assert.Empty(t, m.detailID)
}

func TestShareWithoutSharerAlerts(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProgram)
	m = loadPrograms(t, m)

	_, cmd := updateCmd(t, m, keyPress("s"))
	require.NotNil(t, cmd)
	msg := cmd()
	shared, ok := msg.(ProgramSharedMsg)
	require.True(t, ok)
	require.ErrorIs(t, shared.Err, domain.ErrShareUnavailable)

	m = update(t, m, shared)
	assert.Equal(t, alertShareFailed, m.alert.Message())
}

func TestNewsletterValidation(t *testing.T) {
	m, backend, _ := newTestModel(t, config.RouteProfile)

	m = update(t, m, keyPress("n"))
	require.True(t, m.newsletter.IsVisible())

	m, cmd := updateCmd(t, m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, alertMissingFields, m.alert.Message())
	m = update(t, m, keyPress("enter"))

	m = typeText(t, m, "Ada")
	m = update(t, m, keyPress("tab"))
	m = typeText(t, m, "ada@example")
	m, cmd = updateCmd(t, m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, alertInvalidEmail, m.alert.Message())
	assert.Empty(t, backend.subscribers)
}

func TestNewsletterSubscribe(t *testing.T) {
	m, backend, _ := newTestModel(t, config.RouteProfile)

	m = update(t, m, keyPress("n"))
	m = typeText(t, m, "Jo")
	m = update(t, m, keyPress("tab"))
	m = typeText(t, m, "jo@example.com")

	m, cmd := updateCmd(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	require.Len(t, backend.subscribers, 1)
	assert.Equal(t, "Jo", backend.subscribers[0].Name)
	assert.Equal(t, "jo@example.com", backend.subscribers[0].Email)
	assert.Equal(t, alertSubscribed, m.alert.Message())
	assert.False(t, m.newsletter.IsVisible())

	name, email := m.newsletter.Values()
	assert.Empty(t, name)
	assert.Empty(t, email)
}

func TestNewsletterSubscribeFailureKeepsForm(t *testing.T) {
	m, backend, _ := newTestModel(t, config.RouteProfile)
	backend.subErr = errors.New("offline")

	m = update(t, m, keyPress("n"))
	m = typeText(t, m, "Jo")
	m = update(t, m, keyPress("tab"))
	m = typeText(t, m, "jo@example.com")

	m, cmd := updateCmd(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Empty(t, backend.subscribers)
	assert.Equal(t, "Failed to subscribe. Details: offline", m.alert.Message())
	assert.True(t, m.newsletter.IsVisible())

	name, email := m.newsletter.Values()
	assert.Equal(t, "Jo", name)
	assert.Equal(t, "jo@example.com", email)

	// Acknowledging the alert returns to the still-filled form
	m = update(t, m, keyPress("enter"))
	assert.False(t, m.alert.IsVisible())
	assert.True(t, m.newsletter.IsVisible())
}

func TestSubscribeFailureShowsStoreMessage(t *testing.T) {
	err := errors.Join(errors.New("create subscriber"), &docstore.RequestError{Status: 400, Message: "Invalid document structure"})
	assert.Equal(t, "Failed to subscribe. Details: Invalid document structure", subscribeAlert(err))
	assert.Equal(t, "Failed to subscribe. Details: offline", subscribeAlert(errors.New("offline")))
}

func TestAboutSheetOpensAndCloses(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProfile)

	m, cmd := updateCmd(t, m, keyPress("m"))
	require.NotNil(t, cmd)
	require.True(t, m.sheet.Visible())

	m = runTicks(t, m, 30)
	assert.InDelta(t, 40*anim.RowHeight*anim.SheetOpenFraction, m.sheet.Top(), 0.01)
	assert.Contains(t, m.View(), "expectations.")

	m = update(t, m, keyPress("esc"))
	m = runTicks(t, m, 30)
	assert.False(t, m.sheet.Visible())
}

func TestAboutSheetDragToDismiss(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProfile)
	m = update(t, m, keyPress("m"))
	m = runTicks(t, m, 30)

	row := m.sheetRow()
	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = runTicks(t, m, 120)
	assert.True(t, m.sheet.Visible(), "short drag springs back")
	assert.InDelta(t, m.sheet.OpenTop(), m.sheet.Top(), 0.5)

	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 15, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: row + 15, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = runTicks(t, m, 30)
	assert.False(t, m.sheet.Visible(), "long drag closes")
}

func TestTapAboveSheetCloses(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProfile)
	m = update(t, m, keyPress("m"))
	m = runTicks(t, m, 30)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = runTicks(t, m, 30)
	assert.False(t, m.sheet.Visible())
}

// runTicks delivers n animation frames spaced one frame apart
func runTicks(t *testing.T, m Model, n int) Model {
	t.Helper()
	at := m.lastTick
	for range n {
		at = at.Add(anim.Frame())
		m = update(t, m, AnimTickMsg{At: at})
	}
	return m
}

func TestShakeOnlyOnActiveProfile(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProfile)
	gen := m.profileGen

	m, cmd := updateCmd(t, m, ShakeMsg{Gen: gen})
	require.NotNil(t, cmd)
	assert.True(t, m.shaking)

	m = update(t, m, keyPress("1"))
	m = update(t, m, ShakeMsg{Gen: gen})
	m, cmd = updateCmd(t, m, ShakeMsg{Gen: gen})
	assert.Nil(t, cmd, "shake stops once the profile screen is left")

	m = update(t, m, keyPress("3"))
	assert.Greater(t, m.profileGen, gen)
	_, cmd = updateCmd(t, m, ShakeMsg{Gen: gen})
	assert.Nil(t, cmd, "stale schedule is dropped")
}

func TestShakeSettlesToRest(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteProfile)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m = update(t, m, ShakeMsg{Gen: m.profileGen})
	m = update(t, m, AnimTickMsg{At: now.Add(50 * time.Millisecond)})
	assert.InDelta(t, 5.0, m.shakeOffset, 0.01, "eased halfway to the first offset")
	m = update(t, m, AnimTickMsg{At: now.Add(100 * time.Millisecond)})
	assert.Equal(t, 10.0, m.shakeOffset)
	m = update(t, m, AnimTickMsg{At: now.Add(200 * time.Millisecond)})
	assert.Equal(t, -10.0, m.shakeOffset)

	m, cmd := updateCmd(t, m, AnimTickMsg{At: now.Add(400 * time.Millisecond)})
	assert.Nil(t, cmd)
	assert.False(t, m.shaking)
	assert.Zero(t, m.shakeOffset)
}

func TestProfileOpensLinks(t *testing.T) {
	m, _, opener := newTestModel(t, config.RouteProfile)

	m = update(t, m, keyPress("j"))
	_, cmd := updateCmd(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"https://twitter.com/your-page"}, opener.opened)

	_, cmd = updateCmd(t, m, keyPress("v"))
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, opener.played, 1)
	assert.Contains(t, opener.played[0], "BigBuckBunny.mp4")
}

func TestHomeSearchAndAffiliationLink(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteHome)

	m = update(t, m, keyPress("/"))
	m = typeText(t, m, "resume")
	view := m.View()
	assert.Contains(t, view, "Review")
	assert.NotContains(t, view, "Job Assistance")

	m = update(t, m, keyPress("enter"))
	m = update(t, m, keyPress("j"))
	m = update(t, m, keyPress("enter"))
	assert.Equal(t, config.RouteContact, m.Route())
}

func TestContactFormValidation(t *testing.T) {
	m, _, _ := newTestModel(t, config.RouteContact)

	m = update(t, m, keyPress("i"))
	require.True(t, m.contact.IsActive())
	m = typeText(t, m, "Ada")
	m = update(t, m, keyPress("tab"))
	m = typeText(t, m, "ada@example.com")

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, alertEmptyMessage, m.alert.Message())
}
