// Package dagerr defines the typed errors the component DAG raises, per
// spec.md §4.D and §7. They are fatal to a run and surface to the caller
// unwrapped — nothing in the DAG swallows them.
package dagerr

import (
	"fmt"
	"strings"
)

// DuplicateNodeId is raised by AddNode when a node id is already
// registered.
type DuplicateNodeId struct {
	ID string
}

func (e *DuplicateNodeId) Error() string {
	return fmt.Sprintf("dag: duplicate node id %q", e.ID)
}

// MissingDependency is raised by Validate when a declared dependency isn't
// registered.
type MissingDependency struct {
	Node string
	Dep  string
}

func (e *MissingDependency) Error() string {
	return fmt.Sprintf("dag: node %q depends on unregistered node %q", e.Node, e.Dep)
}

// CycleDetected is raised by Validate when the dependency graph is
// cyclic. Cycles lists the node ids that could not be placed in
// topological order.
type CycleDetected struct {
	Cycles []string
}

func (e *CycleDetected) Error() string {
	return fmt.Sprintf("dag: cycle detected involving nodes: %s", strings.Join(e.Cycles, ", "))
}
