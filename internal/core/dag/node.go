// Package dag implements the component DAG: node registration, cycle and
// missing-dependency validation, insertion-tiebroken topological
// scheduling, and per-day dispatch with a shared execution context. It is
// grounded on the teacher's internal/module/analytics/mbms
// registry/resolver/orchestrator trio, adapted from a cached
// named-model pipeline to spec.md §4.D's daily, uncached node dispatch.
package dag

import (
	"time"

	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/wallet"

	"personalfinancedss/internal/core/money"
)

// Node is one financial component: a (possibly empty) ordered list of
// dependency ids, and a daily Execute callback whose return value is its
// "produced amount" for consumption by dependents. Side effects go through
// State mutation and transaction appends; a node that does nothing on a
// given day returns zero. Per-node mutable bookkeeping (e.g. a Salary
// node's last-paid month) lives in the node's own implementing type —
// never in package-level state — so that scenario sweeps can safely give
// each engine its own DAG instance (spec.md §5, §9).
type Node interface {
	ID() string
	Dependencies() []string
	Execute(state *wallet.State, ctx *Context) money.Amount
}

// Context is the per-day scratch every node sees: the current date, the
// shared RNG stream, and a map of node id to produced amount. It is
// constructed fresh by ExecuteDaily and discarded at end of day.
type Context struct {
	CurrentDate time.Time
	RNG         *rng.Stream
	Outputs     map[string]money.Amount
}

// newContext builds an empty execution context for one simulated day.
func newContext(date time.Time, stream *rng.Stream) *Context {
	return &Context{
		CurrentDate: date,
		RNG:         stream,
		Outputs:     make(map[string]money.Amount),
	}
}

// Output returns the produced amount of a dependency already executed
// this day, or zero if it hasn't run (e.g. it isn't a declared
// dependency).
func (c *Context) Output(nodeID string) money.Amount {
	if v, ok := c.Outputs[nodeID]; ok {
		return v
	}
	return money.Zero
}
