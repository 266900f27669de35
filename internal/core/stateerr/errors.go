// Package stateerr holds the typed errors raised by the timeline/snapshot
// manager, per spec.md §7.
package stateerr

import "fmt"

// UnknownSnapshot is raised when a snapshot id cannot be located in any
// timeline.
type UnknownSnapshot struct {
	ID string
}

func (e UnknownSnapshot) Error() string {
	return fmt.Sprintf("stateerr: unknown snapshot %q", e.ID)
}

// UnknownTimeline is raised when a timeline id has no corresponding entry
// in the manager.
type UnknownTimeline struct {
	ID string
}

func (e UnknownTimeline) Error() string {
	return fmt.Sprintf("stateerr: unknown timeline %q", e.ID)
}
