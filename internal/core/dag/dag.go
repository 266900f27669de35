package dag

import (
	"sync"
	"time"

	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/wallet"
)

// DAG is the public node graph: registration, validation, memoized
// topological scheduling, and per-day dispatch, per spec.md §4.D.
type DAG struct {
	reg *registry

	mu        sync.Mutex
	dirty     bool
	cachedOrd []string
}

// New returns an empty DAG.
func New() *DAG {
	return &DAG{reg: newRegistry(), dirty: true}
}

// AddNode registers a node, failing with dagerr.DuplicateNodeId if the id
// already exists. Dependencies may be registered after their dependents;
// resolution is deferred to Validate/ExecutionOrder.
func (d *DAG) AddNode(n Node) error {
	if err := d.reg.add(n); err != nil {
		return err
	}
	d.markDirty()
	return nil
}

// RemoveNode deletes a node by id. Idempotent.
func (d *DAG) RemoveNode(id string) {
	d.reg.remove(id)
	d.markDirty()
}

func (d *DAG) markDirty() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dirty = true
	d.cachedOrd = nil
}

// Validate fails with dagerr.CycleDetected if the graph is cyclic, or
// dagerr.MissingDependency if any declared dependency is unregistered.
func (d *DAG) Validate() error {
	_, err := d.reg.resolve()
	return err
}

// ExecutionOrder validates if the cached order is stale, then returns a
// topological order over every registered node, insertion-tiebroken.
// ExecutionOrder is memoized and invalidated by AddNode/RemoveNode.
func (d *DAG) ExecutionOrder() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dirty && d.cachedOrd != nil {
		out := make([]string, len(d.cachedOrd))
		copy(out, d.cachedOrd)
		return out, nil
	}

	order, err := d.reg.resolve()
	if err != nil {
		return nil, err
	}

	d.cachedOrd = order
	d.dirty = false

	out := make([]string, len(order))
	copy(out, order)
	return out, nil
}

// ExecuteDaily constructs a fresh Context, iterates registered nodes in
// execution order, invokes each node's Execute, and records its produced
// amount under the node's id. The context is discarded at the end of the
// call. The wallet state passed in is mutated in place and also returned
// for convenience at call sites that chain it.
func (d *DAG) ExecuteDaily(state *wallet.State, date time.Time, stream *rng.Stream) (*wallet.State, error) {
	order, err := d.ExecutionOrder()
	if err != nil {
		return nil, err
	}

	ctx := newContext(date, stream)
	for _, id := range order {
		node, ok := d.reg.get(id)
		if !ok {
			continue // removed between ExecutionOrder() and here; skip
		}
		produced := node.Execute(state, ctx)
		ctx.Outputs[id] = produced
	}
	return state, nil
}

// NodeIDs returns every registered node id in insertion order, primarily
// for diagnostics and tests.
func (d *DAG) NodeIDs() []string {
	return d.reg.ids()
}
