package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/revenland/revenland/internal/domain"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "programs"

// LikeToggle is the optimistic intent produced by Toggle and settled by Commit
type LikeToggle struct {
	ID      string
	Version uint64
	Liked   int
}

// likeState tracks the single logical writer for one program
type likeState struct {
	sem       chan struct{} // held while an update for this program is in flight
	version   uint64        // bumped on every local toggle
	confirmed int           // last value the store acknowledged
	pending   int           // toggles not yet committed
	settled   uint64        // write sequence at which the last toggle settled
}

// ProgramService holds the fetched programs, the selected month and
// the per-program liked state.
type ProgramService struct {
	repo   domain.ProgramRepository
	store  domain.Store
	sharer domain.Sharer
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	programs  []domain.Program
	month     int
	fetchedAt time.Time
	loaded    bool
	likes     map[string]*likeState
	writeSeq  uint64

	group singleflight.Group
}

// NewProgramService creates a program service. store and sharer may be nil.
func NewProgramService(repo domain.ProgramRepository, store domain.Store, sharer domain.Sharer, logger *slog.Logger) *ProgramService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ProgramService{
		repo:   repo,
		store:  store,
		sharer: sharer,
		logger: logger,
		now:    time.Now,
		likes:  make(map[string]*likeState),
	}
	s.month = int(s.now().Month()) - 1
	return s
}

// Restore seeds the list from the local cache when nothing has been fetched
// and nothing is held in memory. It reports whether cached programs were applied.
func (s *ProgramService) Restore() bool {
	if s.store == nil {
		return false
	}
	snap, ok := s.store.GetPrograms()
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Held programs may carry pending like toggles the snapshot predates
	if s.loaded || len(s.programs) > 0 {
		return false
	}
	s.programs = snap.Programs
	s.fetchedAt = snap.FetchedAt
	s.logger.Debug("restored programs from cache", "count", len(snap.Programs))
	return true
}

// Load fetches the full program set. It is an alias of Refresh kept for
// screen activation and month changes.
func (s *ProgramService) Load(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh re-fetches every program. Concurrent calls share one request.
// Programs with a toggle in flight, or whose last write settled after the
// request began, keep their local liked value.
func (s *ProgramService) Refresh(ctx context.Context) error {
	_, err, shared := s.group.Do(refreshKey, func() (any, error) {
		s.mu.Lock()
		startSeq := s.writeSeq
		s.mu.Unlock()

		fetched, err := s.repo.ListPrograms(ctx)
		if err != nil {
			s.logger.Error("failed to fetch programs", "error", err)
			return nil, err
		}

		snap := s.merge(fetched, startSeq)
		if s.store != nil {
			if err := s.store.SavePrograms(snap); err != nil {
				s.logger.Warn("failed to cache programs", "error", err)
			}
		}
		s.logger.Info("loaded programs", "count", len(snap.Programs))
		return nil, nil
	})
	if shared {
		s.logger.Debug("refresh coalesced")
	}
	return err
}

func (s *ProgramService) merge(fetched []domain.Program, startSeq uint64) domain.ProgramSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := make(map[string]int, len(s.programs))
	for _, p := range s.programs {
		local[p.ID] = p.Liked
	}

	merged := make([]domain.Program, len(fetched))
	for i, p := range fetched {
		p.Liked = domain.NormalizeLiked(p.Liked)
		if st, ok := s.likes[p.ID]; ok {
			if st.pending > 0 || st.settled > startSeq {
				if liked, ok := local[p.ID]; ok {
					p.Liked = liked
				}
			} else {
				st.confirmed = p.Liked
			}
		}
		merged[i] = p
	}

	s.programs = merged
	s.fetchedAt = s.now()
	s.loaded = true
	return domain.ProgramSnapshot{Programs: cloneProgramList(merged), FetchedAt: s.fetchedAt}
}

// Loaded reports whether at least one fetch has succeeded
func (s *ProgramService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// FetchedAt returns when the current list was fetched
func (s *ProgramService) FetchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchedAt
}

// All returns every program in store order
func (s *ProgramService) All() []domain.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProgramList(s.programs)
}

// Visible returns the programs dated in the selected month, in store order
func (s *ProgramService) Visible() []domain.Program {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Program
	for _, p := range s.programs {
		if m, ok := p.Month(); ok && m == s.month {
			out = append(out, p)
		}
	}
	return out
}

// Filter narrows the visible programs to fuzzy matches on name or details
func (s *ProgramService) Filter(query string) []domain.Program {
	return FilterPrograms(s.Visible(), query)
}

// Month returns the selected 0-based month
func (s *ProgramService) Month() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.month
}

// SetMonth selects a month, wrapping out-of-range values
func (s *ProgramService) SetMonth(m int) {
	s.mu.Lock()
	s.month = domain.WrapMonth(m)
	s.mu.Unlock()
}

// ShiftMonth moves the selection by offset months and returns the new month
func (s *ProgramService) ShiftMonth(offset int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.month = domain.WrapMonth(s.month + offset)
	return s.month
}

// Get returns the live state of one program
func (s *ProgramService) Get(id string) (domain.Program, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.programs[i], true
	}
	return domain.Program{}, false
}

func (s *ProgramService) indexOf(id string) int {
	for i, p := range s.programs {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Toggle flips the liked flag locally and returns the intent to commit
func (s *ProgramService) Toggle(id string) (LikeToggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return LikeToggle{}, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, id)
	}

	st, ok := s.likes[id]
	if !ok {
		st = &likeState{sem: make(chan struct{}, 1), confirmed: s.programs[i].Liked}
		s.likes[id] = st
	}

	next := 1 - domain.NormalizeLiked(s.programs[i].Liked)
	s.programs[i].Liked = next
	st.version++
	st.pending++

	return LikeToggle{ID: id, Version: st.version, Liked: next}, nil
}

// Commit sends a toggle to the store. Commits for one program run one at a
// time. A toggle superseded by a newer one sends nothing, and so does one whose
// value the store already holds. On failure the last confirmed value is
// restored unless a newer toggle exists; the error is returned either way.
// Once no toggle is outstanding the displayed value equals the confirmed one.
func (s *ProgramService) Commit(ctx context.Context, t LikeToggle) error {
	s.mu.Lock()
	st, ok := s.likes[t.ID]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProgramNotFound, t.ID)
	}

	select {
	case st.sem <- struct{}{}:
	case <-ctx.Done():
		s.finish(t.ID, st, nil)
		return ctx.Err()
	}
	defer func() { <-st.sem }()

	s.mu.Lock()
	if st.version != t.Version || t.Liked == st.confirmed {
		superseded := st.version != t.Version
		s.finishLocked(t.ID, st, nil)
		s.mu.Unlock()
		if superseded {
			s.logger.Debug("like toggle superseded", "id", t.ID, "version", t.Version)
		}
		return nil
	}
	s.mu.Unlock()

	_, err := s.repo.SetLiked(ctx, t.ID, t.Liked)
	if err != nil {
		s.logger.Error("failed to update like status", "id", t.ID, "error", err)
		s.finish(t.ID, st, func() {
			if st.version == t.Version {
				s.setLiked(t.ID, st.confirmed)
			}
		})
		return err
	}

	s.finish(t.ID, st, func() { st.confirmed = t.Liked })
	s.persist()
	return nil
}

// ToggleLike flips and commits in one call
func (s *ProgramService) ToggleLike(ctx context.Context, id string) (LikeToggle, error) {
	t, err := s.Toggle(id)
	if err != nil {
		return LikeToggle{}, err
	}
	return t, s.Commit(ctx, t)
}

func (s *ProgramService) finish(id string, st *likeState, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishLocked(id, st, fn)
}

// finishLocked settles one toggle. s.mu must be held.
func (s *ProgramService) finishLocked(id string, st *likeState, fn func()) {
	if fn != nil {
		fn()
	}
	st.pending--
	s.writeSeq++
	st.settled = s.writeSeq
	if st.pending == 0 {
		s.setLiked(id, st.confirmed)
	}
}

// setLiked updates the displayed value. s.mu must be held.
func (s *ProgramService) setLiked(id string, liked int) {
	if i := s.indexOf(id); i >= 0 {
		s.programs[i].Liked = liked
	}
}

func (s *ProgramService) persist() {
	if s.store == nil {
		return
	}
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	snap := domain.ProgramSnapshot{Programs: cloneProgramList(s.programs), FetchedAt: s.fetchedAt}
	s.mu.Unlock()

	if err := s.store.SavePrograms(snap); err != nil {
		s.logger.Warn("failed to cache programs", "error", err)
	}
}

// Share hands the program's share message to the platform
func (s *ProgramService) Share(p domain.Program) error {
	if s.sharer == nil {
		return domain.ErrShareUnavailable
	}
	if err := s.sharer.Share(ShareMessage(p)); err != nil {
		s.logger.Error("failed to share program", "id", p.ID, "error", err)
		return fmt.Errorf("share program: %w", err)
	}
	s.logger.Info("program shared", "id", p.ID)
	return nil
}

// ShareMessage composes the text shared for a program
func ShareMessage(p domain.Program) string {
	return fmt.Sprintf("Check out this program: %s\n%s\nDate: %s (%s)", p.Name, p.Details, p.Date, p.Day)
}

// FilterPrograms keeps programs whose name or details fuzzy-match query, in order
func FilterPrograms(programs []domain.Program, query string) []domain.Program {
	query = strings.TrimSpace(query)
	if query == "" {
		return programs
	}

	var out []domain.Program
	for _, p := range programs {
		if fuzzy.MatchNormalizedFold(query, p.Name) || fuzzy.MatchNormalizedFold(query, p.Details) {
			out = append(out, p)
		}
	}
	return out
}

func cloneProgramList(programs []domain.Program) []domain.Program {
	if programs == nil {
		return nil
	}
	out := make([]domain.Program, len(programs))
	copy(out, programs)
	return out
}
