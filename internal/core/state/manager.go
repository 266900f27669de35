// Package state implements the timeline/snapshot manager, per spec.md
// §4.G. It owns the map of timeline id to Timeline and the active timeline
// pointer; it does not own a simulation's live wallet state — the engine
// holds that and hands it to Manager at snapshot time.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/stateerr"
	"personalfinancedss/internal/core/store"
	"personalfinancedss/internal/core/wallet"
)

// Modifications are the supported branch-time overrides, per spec.md
// §4.F: Balance replaces, Assets merges (by name), Debts appends.
type Modifications struct {
	Balance *money.Amount
	Assets  []wallet.Asset
	Debts   []wallet.Debt
}

// Manager holds every timeline produced by a simulation run and its
// branches, persisting each snapshot through a pluggable store.SnapshotStore
// (spec.md SPEC_FULL.md §4.G). Grounded on the teacher's service-layer
// shape: constructor-injected *zap.Logger, context-threaded methods,
// typed errors surfaced rather than swallowed.
type Manager struct {
	mu sync.Mutex

	timelines         map[string]*wallet.Timeline
	currentTimelineID string

	backend store.SnapshotStore
	logger  *zap.Logger
}

// NewManager creates the root timeline seeded with the engine's initial
// state. backend defaults to an in-memory store when nil.
func NewManager(root *wallet.State, backend store.SnapshotStore, logger *zap.Logger) *Manager {
	if backend == nil {
		backend = store.NewMemoryStore()
	}
	id := uuid.New().String()
	tl := wallet.NewTimeline(id, "")
	tl.States[root.CurrentDate] = root

	return &Manager{
		timelines:         map[string]*wallet.Timeline{id: tl},
		currentTimelineID: id,
		backend:           backend,
		logger:            logger,
	}
}

// CurrentTimelineID reports the active timeline.
func (m *Manager) CurrentTimelineID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTimelineID
}

// AddState records a state observation at date into timelineID's timeline,
// per spec.md §4.G's add_state(date, state). The caller (an Engine) names
// its own timeline explicitly rather than relying on "the" active one,
// since a Manager is shared by a parent Engine and every Engine branched
// from it.
func (m *Manager) AddState(timelineID string, date time.Time, s *wallet.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timelines[timelineID].States[date] = s
}

// CreateSnapshot deep-copies liveState (including its RNG state) and
// attaches it to timelineID's snapshot map, then persists a JSON
// serialization of it through the configured backend.
func (m *Manager) CreateSnapshot(ctx context.Context, timelineID string, liveState *wallet.State, description string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tl := m.timelines[timelineID]
	cp := liveState.DeepCopy()

	snap := &wallet.Snapshot{
		ID:             uuid.New().String(),
		CapturedAt:     time.Now().UTC(),
		SimulationDate: cp.CurrentDate,
		State:          cp,
		Description:    description,
	}
	tl.Snapshots[snap.ID] = snap

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("state: marshal snapshot: %w", err)
	}
	if err := m.backend.Put(ctx, snap.ID, data); err != nil {
		m.logger.Error("failed to persist snapshot", zap.String("snapshot_id", snap.ID), zap.Error(err))
		return "", fmt.Errorf("state: persist snapshot: %w", err)
	}

	return snap.ID, nil
}

// findSnapshot searches every timeline for a snapshot id, per spec.md
// §4.F "locates the snapshot in any timeline".
func (m *Manager) findSnapshot(id string) (*wallet.Snapshot, string, bool) {
	for tlID, tl := range m.timelines {
		if snap, ok := tl.Snapshots[id]; ok {
			return snap, tlID, true
		}
	}
	return nil, "", false
}

// BranchFromSnapshot creates a new timeline whose parent is the source
// snapshot's timeline, deep-copies the snapshot state, applies
// modifications, restores the RNG from the (possibly modified) state's
// rng_state, and installs the result as the new timeline's current state.
// It returns the new timeline id and the branched state; the caller installs
// both as a new Engine's own timeline id and live state. It deliberately
// does not touch Manager's own "current" timeline pointer: a Manager is
// shared between a parent Engine and every Engine branched from it, so
// reassigning a single shared pointer here would silently redirect the
// parent's subsequent AddState/Result calls onto the branch's timeline.
func (m *Manager) BranchFromSnapshot(ctx context.Context, snapshotID string, mods Modifications) (string, *wallet.State, *rng.Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, parentTimelineID, ok := m.findSnapshot(snapshotID)
	if !ok {
		return "", nil, nil, stateerr.UnknownSnapshot{ID: snapshotID}
	}

	branched := snap.State.DeepCopy()

	if mods.Balance != nil {
		branched.Balance = *mods.Balance
	}
	for _, a := range mods.Assets {
		branched.Assets.Put(a)
	}
	branched.Debts = append(branched.Debts, mods.Debts...)

	stream, err := rng.FromState(branched.RNGState)
	if err != nil {
		return "", nil, nil, fmt.Errorf("state: restore rng from snapshot %q: %w", snapshotID, err)
	}

	newID := uuid.New().String()
	newTimeline := wallet.NewTimeline(newID, parentTimelineID)
	newTimeline.States[branched.CurrentDate] = branched
	m.timelines[newID] = newTimeline

	return newID, branched, stream, nil
}

// SwitchTimeline makes id the active timeline.
func (m *Manager) SwitchTimeline(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.timelines[id]; !ok {
		return stateerr.UnknownTimeline{ID: id}
	}
	m.currentTimelineID = id
	return nil
}

// GetTimeline returns the timeline by id.
func (m *Manager) GetTimeline(id string) (*wallet.Timeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tl, ok := m.timelines[id]
	if !ok {
		return nil, stateerr.UnknownTimeline{ID: id}
	}
	return tl, nil
}
