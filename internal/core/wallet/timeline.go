package wallet

import "time"

// Snapshot is a deep-copied wallet state tagged by id and date, per
// spec.md §3. ParentSnapshotID uses an opaque id rather than a pointer so
// the snapshot tree can be freely serialized without cycles
// (spec.md §9 "Snapshots and cyclic references").
type Snapshot struct {
	ID               string
	CapturedAt       time.Time
	SimulationDate   time.Time
	State            *State
	ParentSnapshotID string // empty if none
	Description      string
}

// Timeline is a sequence of per-date wallet states and a set of snapshots,
// optionally branched from a parent timeline, per spec.md §3.
type Timeline struct {
	ID        string
	ParentID  string // empty if none
	States    map[time.Time]*State
	Snapshots map[string]*Snapshot
}

// NewTimeline returns an empty, ready-to-use Timeline.
func NewTimeline(id, parentID string) *Timeline {
	return &Timeline{
		ID:        id,
		ParentID:  parentID,
		States:    make(map[time.Time]*State),
		Snapshots: make(map[string]*Snapshot),
	}
}
