// Package state holds the single application state: every collection the
// service operates on, kept as immutable copy-on-write snapshots and
// mirrored to an opaque key-value store after each mutation. The mirror is
// passive: load failures fall back to the built-in seed dataset, and write
// failures are logged but never surfaced to callers.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/smartattend/attendance-backend-go/internal/domain/attendance"
	"github.com/smartattend/attendance-backend-go/internal/domain/broadcast"
	"github.com/smartattend/attendance-backend-go/internal/domain/holiday"
	"github.com/smartattend/attendance-backend-go/internal/domain/leave"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
)

// Mirror keys, one per collection. The values are JSON arrays.
const (
	KeyUsers       = "ai_smart_attendance_users"
	KeyAttendance  = "ai_smart_attendance_data"
	KeyLeaves      = "ai_smart_attendance_leaves"
	KeyPermissions = "ai_smart_attendance_permissions"
	KeyHolidays    = "ai_smart_holidays"
	KeyBroadcasts  = "ai_smart_broadcasts"
)

// Snapshot is one immutable view of the full application state. Readers
// hold a snapshot and never observe a partially-updated collection;
// writers build a new snapshot and swap it in wholesale.
type Snapshot struct {
	Users       []user.User
	Records     []attendance.Record
	Leaves      []leave.LeaveRequest
	Permissions []leave.PermissionRequest
	Holidays    []holiday.Holiday
	Broadcasts  []broadcast.Message
}

func (s *Snapshot) clone() *Snapshot {
	out := &Snapshot{
		Users:       make([]user.User, len(s.Users)),
		Records:     make([]attendance.Record, len(s.Records)),
		Leaves:      make([]leave.LeaveRequest, len(s.Leaves)),
		Permissions: make([]leave.PermissionRequest, len(s.Permissions)),
		Holidays:    make([]holiday.Holiday, len(s.Holidays)),
		Broadcasts:  make([]broadcast.Message, len(s.Broadcasts)),
	}
	copy(out.Users, s.Users)
	copy(out.Records, s.Records)
	copy(out.Leaves, s.Leaves)
	copy(out.Permissions, s.Permissions)
	copy(out.Holidays, s.Holidays)
	copy(out.Broadcasts, s.Broadcasts)
	return out
}

// Store owns the current snapshot and the persistence mirror.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
	kv   kv.Store
}

// Load builds a Store from the mirror, collection by collection. A
// missing key, an unparseable value, or (for users, records and holidays)
// a usable-but-empty value falls back to the seed dataset.
func Load(ctx context.Context, backend kv.Store, seed *Snapshot) *Store {
	snap := &Snapshot{
		Users:       loadCollection(ctx, backend, KeyUsers, seed.Users, true),
		Records:     loadCollection(ctx, backend, KeyAttendance, seed.Records, true),
		Leaves:      loadCollection(ctx, backend, KeyLeaves, seed.Leaves, false),
		Permissions: loadCollection(ctx, backend, KeyPermissions, seed.Permissions, false),
		Holidays:    loadCollection(ctx, backend, KeyHolidays, seed.Holidays, false),
		Broadcasts:  loadCollection(ctx, backend, KeyBroadcasts, seed.Broadcasts, false),
	}
	return &Store{snap: snap, kv: backend}
}

// loadCollection reads one mirror key. emptySeeds controls whether an
// empty stored array also falls back to the seed, which keeps the seed
// dataset visible until real data exists.
func loadCollection[T any](ctx context.Context, backend kv.Store, key string, seed []T, emptySeeds bool) []T {
	raw, ok, err := backend.Get(ctx, key)
	if err != nil {
		slog.Warn("state mirror read failed, using seed", "key", key, "error", err)
		return seed
	}
	if !ok {
		return seed
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("state mirror value unparseable, using seed", "key", key, "error", err)
		return seed
	}
	if emptySeeds && len(out) == 0 {
		return seed
	}
	return out
}

// Snapshot returns the current state. The returned value must be treated
// as read-only.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Update runs fn against a copy of the current snapshot. If fn returns an
// error the state is left untouched; otherwise the copy becomes the new
// snapshot and every collection is mirrored synchronously. Mirror write
// failures are logged, not returned: the mirror is passive.
func (s *Store) Update(ctx context.Context, fn func(next *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.snap = next
	s.mirror(ctx, next)
	return nil
}

func (s *Store) mirror(ctx context.Context, snap *Snapshot) {
	writeCollection(ctx, s.kv, KeyUsers, snap.Users)
	writeCollection(ctx, s.kv, KeyAttendance, snap.Records)
	writeCollection(ctx, s.kv, KeyLeaves, snap.Leaves)
	writeCollection(ctx, s.kv, KeyPermissions, snap.Permissions)
	writeCollection(ctx, s.kv, KeyHolidays, snap.Holidays)
	writeCollection(ctx, s.kv, KeyBroadcasts, snap.Broadcasts)
}

func writeCollection[T any](ctx context.Context, backend kv.Store, key string, value []T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("state mirror marshal failed", "key", key, "error", err)
		return
	}
	if err := backend.Set(ctx, key, raw); err != nil {
		slog.Error("state mirror write failed", "key", key, "error", err)
	}
}
