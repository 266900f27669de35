package dag

import (
	"sync"

	"personalfinancedss/internal/core/dagerr"
)

// registry stores nodes by id plus their insertion order, the way
// mbms.modelRegistry stores models plus metadata — but keyed on an
// ordered slice instead of a bare map, since spec.md §4.D requires
// insertion-order tie-breaks a map iteration cannot guarantee.
type registry struct {
	mu     sync.RWMutex
	byID   map[string]Node
	order  []string // insertion order of AddNode calls
	seqNum map[string]int
}

func newRegistry() *registry {
	return &registry{
		byID:   make(map[string]Node),
		seqNum: make(map[string]int),
	}
}

// add registers a node, failing with DuplicateNodeId if the id already
// exists. Dependencies may reference nodes not yet registered; resolution
// is deferred to Validate.
func (r *registry) add(n Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := n.ID()
	if _, exists := r.byID[id]; exists {
		return &dagerr.DuplicateNodeId{ID: id}
	}
	r.byID[id] = n
	r.seqNum[id] = len(r.order)
	r.order = append(r.order, id)
	return nil
}

// remove deletes a node by id. Idempotent.
func (r *registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return
	}
	delete(r.byID, id)
	delete(r.seqNum, id)
	for i, n := range r.order {
		if n == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry) get(id string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byID[id]
	return n, ok
}

// ids returns every registered node id in insertion order.
func (r *registry) ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// sequence returns the insertion index of a node id, used by the resolver
// to tie-break nodes with no mutual dependency.
func (r *registry) sequence(id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seqNum[id]
}
