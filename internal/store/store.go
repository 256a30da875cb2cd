// Package store maintains the authoritative in-memory expense snapshot
// for one owner, applying mutations optimistically and reconciling them
// with the remote store, with the local cache as the offline fallback.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rizqly/rizqly/internal/localcache"
	"github.com/rizqly/rizqly/internal/models"
	"github.com/rizqly/rizqly/internal/stats"
)

// RemoteStore is the remote persistence client, scoped by owner.
type RemoteStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Expense, error)
	Insert(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id, ownerID string) error
	DeleteAllByOwner(ctx context.Context, ownerID string) error
}

// Mode identifies which persistence backend the store is operating
// against.
type Mode int

const (
	// ModeEmpty is the steady state when there is no signed-in owner.
	ModeEmpty Mode = iota
	// ModeLocal means all persistence goes to the local cache only.
	ModeLocal
	// ModeRemote means mutations attempt remote persistence first.
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeRemote:
		return "remote"
	case ModeLocal:
		return "local"
	default:
		return "empty"
	}
}

// Advisory notices surfaced through the read model. Failures never
// propagate past the store as faults.
const (
	NoticeOffline       = "Using offline mode - remote store not available"
	NoticeSavedLocally  = "Saved locally - will sync when online"
	NoticeRefreshFailed = "Failed to refresh"
)

// ErrUnauthenticated is returned by mutations when the store has no
// signed-in owner. No state is touched in that case.
var ErrUnauthenticated = errors.New("no signed-in user")

// Input holds the fields for a new expense, either from the parser or
// from direct structured entry.
type Input struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	BankAccount string
	RawInput    string
}

// Store is the synchronizer for one owner's expenses.
//
// Every operation runs under one mutex held across the remote leg, so
// overlapping calls are fully serialized and a slow load can never
// overwrite a newer refresh result. Each optimistic mutation is applied
// to the snapshot before the remote attempt and is never reverted.
type Store struct {
	ownerID string
	remote  RemoteStore // nil when the remote store is not configured
	cache   localcache.BlobStore
	log     zerolog.Logger

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	mode     Mode
	loading  bool
	notice   string
	snapshot []models.Expense
}

// New creates a store for ownerID. An empty ownerID yields the Empty
// steady state: reads work, mutations fail with ErrUnauthenticated.
// A nil remote means the store starts and stays in local-only mode.
func New(ownerID string, remote RemoteStore, cache localcache.BlobStore, log zerolog.Logger) *Store {
	return &Store{
		ownerID:  ownerID,
		remote:   remote,
		cache:    cache,
		log:      log.With().Str("component", "store").Logger(),
		now:      time.Now,
		newID:    uuid.NewString,
		snapshot: []models.Expense{},
	}
}

// Load fetches the owner's expenses. With a remote configured it fetches
// from there and enters remote mode; on failure (or with no remote) it
// loads the cached snapshot and enters local-only mode. Load never
// returns an error: degradation is reported through the notice.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()
	s.notice = ""

	if s.ownerID == "" {
		s.mode = ModeEmpty
		s.snapshot = []models.Expense{}
		return
	}

	if s.remote != nil {
		expenses, err := s.remote.ListByOwner(ctx, s.ownerID)
		if err == nil {
			s.snapshot = normalizeAll(expenses)
			s.mode = ModeRemote
			return
		}
		s.log.Warn().Err(err).Msg("Remote load failed, falling back to local cache")
		s.notice = NoticeOffline
	}

	s.loadFromCacheLocked(ctx)
	s.mode = ModeLocal
}

// Add synthesizes a new expense from input and inserts it at the head of
// the snapshot before any persistence is attempted. In remote mode the
// optimistic record is replaced by the remote-confirmed row on success;
// on failure it is kept, the snapshot is flushed to the cache and the
// store demotes to local-only.
func (s *Store) Add(ctx context.Context, input Input) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerID == "" {
		return models.Expense{}, ErrUnauthenticated
	}

	expense := models.Expense{
		ID:          s.newID(),
		OwnerID:     s.ownerID,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		BankAccount: input.BankAccount,
		CreatedAt:   s.now(),
		RawInput:    input.RawInput,
	}
	if err := expense.Normalize(); err != nil {
		return models.Expense{}, err
	}

	// Optimistic: visible to readers before the remote round-trip.
	s.snapshot = append([]models.Expense{expense}, s.snapshot...)

	if s.mode == ModeRemote && s.remote != nil {
		confirmed := expense
		if err := s.remote.Insert(ctx, &confirmed); err != nil {
			s.log.Warn().Err(err).Msg("Remote insert failed, keeping optimistic record")
			s.flushLocked(ctx)
			s.notice = NoticeSavedLocally
			s.mode = ModeLocal
			return expense, nil
		}
		// Swap in the remote-assigned id and timestamp, then restore
		// recency order.
		for i := range s.snapshot {
			if s.snapshot[i].ID == expense.ID {
				s.snapshot[i] = confirmed
				break
			}
		}
		sortByRecency(s.snapshot)
		return confirmed, nil
	}

	s.flushLocked(ctx)
	return expense, nil
}

// Delete removes the expense with id from the snapshot. The removal is
// optimistic and is not reverted if the remote delete fails; the next
// Load or Refresh reconciles the snapshot against remote truth.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerID == "" {
		return ErrUnauthenticated
	}

	kept := s.snapshot[:0:0]
	for _, e := range s.snapshot {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.snapshot = kept

	if s.mode == ModeRemote && s.remote != nil {
		if err := s.remote.Delete(ctx, id, s.ownerID); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("Remote delete failed, keeping local removal")
			s.flushLocked(ctx)
			s.notice = NoticeSavedLocally
			s.mode = ModeLocal
		}
		return nil
	}

	s.flushLocked(ctx)
	return nil
}

// Clear empties the owner's snapshot, attempts a best-effort remote bulk
// delete, and unconditionally overwrites the cache with the empty
// snapshot.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerID == "" {
		return ErrUnauthenticated
	}

	s.snapshot = []models.Expense{}

	if s.mode == ModeRemote && s.remote != nil {
		if err := s.remote.DeleteAllByOwner(ctx, s.ownerID); err != nil {
			s.log.Warn().Err(err).Msg("Remote clear failed")
			s.notice = NoticeSavedLocally
			s.mode = ModeLocal
		}
	}

	s.flushLocked(ctx)
	return nil
}

// Refresh re-fetches the snapshot from the remote store. Success replaces
// the snapshot, clears any notice and (re-)enters remote mode; failure
// sets a notice, demotes to local-only and leaves the snapshot untouched.
// A no-op without a signed-in owner or a configured remote.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerID == "" || s.remote == nil {
		return
	}

	s.loading = true
	defer func() { s.loading = false }()

	expenses, err := s.remote.ListByOwner(ctx, s.ownerID)
	if err != nil {
		s.log.Warn().Err(err).Msg("Refresh failed")
		s.notice = NoticeRefreshFailed
		s.mode = ModeLocal
		return
	}

	s.snapshot = normalizeAll(expenses)
	s.notice = ""
	s.mode = ModeRemote
}

// Snapshot returns a copy of the current in-memory expense list, ordered
// by recency.
func (s *Store) Snapshot() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Expense, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// MonthlyStats computes the aggregates for the calendar month containing
// ref over the current snapshot.
func (s *Store) MonthlyStats(ref time.Time) stats.MonthlyStats {
	return stats.Monthly(s.Snapshot(), ref)
}

// IsLoading reports whether an initial load or refresh is in progress.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsOnline reports whether the store is remote-backed.
func (s *Store) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode == ModeRemote
}

// Mode returns the current backend mode.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Notice returns the current advisory notice, or "" when there is none.
func (s *Store) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// loadFromCacheLocked replaces the snapshot with the cached one.
// Cache errors degrade to an empty snapshot.
func (s *Store) loadFromCacheLocked(ctx context.Context) {
	expenses, err := localcache.LoadExpenses(ctx, s.cache, s.ownerID)
	if err != nil {
		s.log.Warn().Err(err).Msg("Cache load failed")
		expenses = []models.Expense{}
	}
	s.snapshot = expenses
}

// flushLocked persists the snapshot to the local cache as a safety net.
// Failures are logged and swallowed.
func (s *Store) flushLocked(ctx context.Context) {
	if err := localcache.SaveExpenses(ctx, s.cache, s.ownerID, s.snapshot); err != nil {
		s.log.Warn().Err(err).Msg("Cache write failed")
	}
}

// normalizeAll validates rows from the remote store, dropping malformed
// ones, and re-sorts by recency.
func normalizeAll(expenses []models.Expense) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if err := e.Normalize(); err != nil {
			continue
		}
		out = append(out, e)
	}
	sortByRecency(out)
	return out
}

// sortByRecency orders expenses by createdAt descending.
func sortByRecency(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
}
