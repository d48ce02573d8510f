// Package service implements the kutu tracker core: the state container
// owning the four persisted collections and the intents that mutate them.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/azamanzizi-droid/ku2cash/internal/calculator"
	"github.com/azamanzizi-droid/ku2cash/internal/metrics"
	"github.com/azamanzizi-droid/ku2cash/internal/models"
	"github.com/azamanzizi-droid/ku2cash/internal/schedule"
	"github.com/azamanzizi-droid/ku2cash/internal/storage"
)

// KutuService owns the tracker state. All intents run under one lock, so a
// reader never observes a rename applied to the registry but not yet fanned
// out to the ledger and schedule.
//
// Snapshot writes happen after every successful mutation and are best-effort:
// a failed write is logged and counted, never surfaced to the caller.
type KutuService struct {
	mu    sync.Mutex
	store storage.Store

	now       func() time.Time
	seedCount int

	members  []models.Member
	payments []models.Payment
	schedule []models.ScheduleEntry
	settings models.Settings

	// lastPaymentID guards time-derived payment ids against same-millisecond
	// collisions.
	lastPaymentID int64
}

// Option configures a KutuService.
type Option func(*KutuService)

// WithSeedCount overrides how many placeholder members a fresh circle starts
// with.
func WithSeedCount(n int) Option {
	return func(s *KutuService) { s.seedCount = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *KutuService) { s.now = now }
}

// New creates a KutuService over the given snapshot store. Call Load before
// serving intents.
func New(store storage.Store, opts ...Option) *KutuService {
	s := &KutuService{
		store:     store,
		now:       time.Now,
		seedCount: schedule.DefaultSeedCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the four snapshots from the store. Missing or corrupt snapshots
// degrade to empty/default values, never to an error. On a completely fresh
// state (no members and no schedule) it seeds the initial circle; once any
// member or schedule entry exists the seeding never runs again.
func (s *KutuService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members, _ = loadSnapshot[[]models.Member](ctx, s.store, storage.KeyMembers)
	s.payments, _ = loadSnapshot[[]models.Payment](ctx, s.store, storage.KeyPayments)
	s.schedule, _ = loadSnapshot[[]models.ScheduleEntry](ctx, s.store, storage.KeySchedule)

	settings, ok := loadSnapshot[models.Settings](ctx, s.store, storage.KeySettings)
	if !ok {
		settings = models.DefaultSettings(s.now())
	}
	s.settings = settings

	for _, p := range s.payments {
		if p.ID > s.lastPaymentID {
			s.lastPaymentID = p.ID
		}
	}

	if len(s.members) == 0 && len(s.schedule) == 0 && s.seedCount > 0 {
		s.members = schedule.SeedMembers(s.seedCount)
		s.schedule = schedule.Shuffled(s.members)
		slog.Info("Seeded initial circle", "members", len(s.members))
		s.persist(ctx, storage.KeyMembers, s.members)
		s.persist(ctx, storage.KeySchedule, s.schedule)
	}

	slog.Info("State loaded",
		"members", len(s.members),
		"payments", len(s.payments),
		"schedule", len(s.schedule),
	)
	return nil
}

// loadSnapshot reads and decodes one snapshot. The bool reports whether a
// usable snapshot existed; absence and corruption both degrade to the zero
// value.
func loadSnapshot[T any](ctx context.Context, store storage.Store, key string) (T, bool) {
	var value T

	blob, ok, err := store.Get(ctx, key)
	if err != nil {
		slog.Warn("Snapshot read failed, using default", "key", key, "error", err)
		return value, false
	}
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(blob, &value); err != nil {
		slog.Warn("Snapshot is corrupt, using default", "key", key, "error", err)
		var zero T
		return zero, false
	}
	return value, true
}

// AddMember registers a new member and extends the rotation schedule by one
// turn. The new id is max(existing)+1, never a recycled id.
func (s *KutuService) AddMember(ctx context.Context, name string) (models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Member{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, m := range s.members {
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	member := models.Member{ID: maxID + 1, Name: name}
	s.members = append(s.members, member)
	s.schedule = schedule.Append(s.schedule, member)

	slog.Info("Member added", "member_id", member.ID, "name", member.Name)
	metrics.Mutations.WithLabelValues("add_member").Inc()

	s.persist(ctx, storage.KeyMembers, s.members)
	s.persist(ctx, storage.KeySchedule, s.schedule)
	return member, nil
}

// RenameMember changes a member's display name and fans the new name out to
// every payment and schedule entry referencing the member. An unknown id is
// a silent no-op, not an error.
func (s *KutuService) RenameMember(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].Name = name
			found = true
			break
		}
	}
	if !found {
		slog.Debug("Rename ignored for unknown member", "member_id", id)
		return nil
	}

	for i := range s.payments {
		if s.payments[i].MemberID == id {
			s.payments[i].MemberName = name
		}
	}
	for i := range s.schedule {
		if s.schedule[i].Member.ID == id {
			s.schedule[i].Member.Name = name
		}
	}

	slog.Info("Member renamed", "member_id", id, "name", name)
	metrics.Mutations.WithLabelValues("rename_member").Inc()

	s.persist(ctx, storage.KeyMembers, s.members)
	s.persist(ctx, storage.KeyPayments, s.payments)
	s.persist(ctx, storage.KeySchedule, s.schedule)
	return nil
}

// AddPayment records a contribution for a member. The ledger is kept most
// recent first.
func (s *KutuService) AddPayment(ctx context.Context, memberID int64, amount float64) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var member *models.Member
	for i := range s.members {
		if s.members[i].ID == memberID {
			member = &s.members[i]
			break
		}
	}
	if member == nil {
		return models.Payment{}, ErrUnknownMember
	}

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastPaymentID {
		id = s.lastPaymentID + 1
	}
	s.lastPaymentID = id

	payment := models.Payment{
		ID:         id,
		MemberID:   member.ID,
		MemberName: member.Name,
		Amount:     amount,
		Date:       now.Format(models.PaymentDateLayout),
	}
	s.payments = append([]models.Payment{payment}, s.payments...)

	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"member_id", payment.MemberID,
		"amount", payment.Amount,
	)
	metrics.Mutations.WithLabelValues("add_payment").Inc()

	s.persist(ctx, storage.KeyPayments, s.payments)
	return payment, nil
}

// ReorderSchedule replaces the rotation order with the given sequence of
// member ids, which must be a permutation of the current schedule. Week
// numbers are renumbered 1..N unconditionally.
func (s *KutuService) ReorderSchedule(ctx context.Context, order []int64) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(order) != len(s.schedule) {
		return nil, ErrBadOrder
	}

	byMember := make(map[int64]models.ScheduleEntry, len(s.schedule))
	for _, e := range s.schedule {
		byMember[e.Member.ID] = e
	}

	reordered := make([]models.ScheduleEntry, 0, len(order))
	for _, id := range order {
		entry, ok := byMember[id]
		if !ok {
			return nil, ErrBadOrder
		}
		delete(byMember, id) // catch duplicates
		reordered = append(reordered, entry)
	}

	s.schedule = schedule.Renumber(reordered)

	slog.Info("Schedule reordered", "entries", len(s.schedule))
	metrics.Mutations.WithLabelValues("reorder_schedule").Inc()

	s.persist(ctx, storage.KeySchedule, s.schedule)
	return s.scheduleCopy(), nil
}

// UpdateSettings replaces the settings wholesale. No field-level validation:
// the surrounding form layer owns that.
func (s *KutuService) UpdateSettings(ctx context.Context, settings models.Settings) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings

	slog.Info("Settings updated",
		"target", settings.TotalPaymentTarget,
		"start_date", settings.StartDate,
		"per_turn", settings.PaymentPerTurn,
	)
	metrics.Mutations.WithLabelValues("update_settings").Inc()

	s.persist(ctx, storage.KeySettings, s.settings)
	return s.settings
}

// Members returns a copy of the member registry.
func (s *KutuService) Members() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Payments returns a copy of the ledger, most recent first.
func (s *KutuService) Payments() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Schedule returns a copy of the rotation schedule in week order.
func (s *KutuService) Schedule() []models.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleCopy()
}

func (s *KutuService) scheduleCopy() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(s.schedule))
	copy(out, s.schedule)
	return out
}

// Settings returns the current settings.
func (s *KutuService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// MemberBalances derives each member's paid total and remaining balance
// against the configured target.
func (s *KutuService) MemberBalances() []calculator.MemberBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.MemberBalances(s.members, s.payments, s.settings.TotalPaymentTarget)
}

// PaymentSummary aggregates the whole ledger.
func (s *KutuService) PaymentSummary() calculator.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.Summarize(s.payments)
}

// persist writes one snapshot, best-effort. Must be called with the lock
// held so the snapshot matches the state the mutation produced.
func (s *KutuService) persist(ctx context.Context, key string, value any) {
	blob, err := json.Marshal(value)
	if err != nil {
		slog.Error("Snapshot encode failed", "key", key, "error", err)
		metrics.PersistenceFailures.Inc()
		return
	}
	if err := s.store.Set(ctx, key, blob); err != nil {
		slog.Warn("Snapshot write failed", "key", key, "error", err)
		metrics.PersistenceFailures.Inc()
	}
}
