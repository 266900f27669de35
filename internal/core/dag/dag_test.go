package dag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfinancedss/internal/core/dagerr"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/wallet"
)

// fakeNode records its own execution into a shared log, for asserting
// ordering (spec.md property 7: for every edge u -> v, u executes before
// v on each day).
type fakeNode struct {
	id   string
	deps []string
	log  *[]string
}

func (n *fakeNode) ID() string             { return n.id }
func (n *fakeNode) Dependencies() []string { return n.deps }
func (n *fakeNode) Execute(state *wallet.State, ctx *Context) money.Amount {
	*n.log = append(*n.log, n.id)
	return money.New(1)
}

func newTestState(t *testing.T) *wallet.State {
	t.Helper()
	s, err := wallet.New(wallet.Config{
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		InitialBalance:     money.New(1000),
		InitialCreditScore: wallet.DefaultInitialCreditScore,
	})
	require.NoError(t, err)
	return s
}

func TestDAG_TopologicalOrder_RespectsEdges(t *testing.T) {
	var log []string
	d := New()
	require.NoError(t, d.AddNode(&fakeNode{id: "c", deps: []string{"a", "b"}, log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "a", log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "b", deps: []string{"a"}, log: &log}))

	order, err := d.ExecutionOrder()
	require.NoError(t, err)

	pos := make(map[string]int)
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["b"], pos["c"])
	assert.Less(t, pos["a"], pos["c"])
}

func TestDAG_InsertionOrderTiebreak(t *testing.T) {
	var log []string
	d := New()
	// z, y, x have no mutual dependency; insertion order must win.
	require.NoError(t, d.AddNode(&fakeNode{id: "z", log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "y", log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "x", log: &log}))

	order, err := d.ExecutionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, order)
}

func TestDAG_DuplicateNodeId(t *testing.T) {
	d := New()
	var log []string
	require.NoError(t, d.AddNode(&fakeNode{id: "a", log: &log}))
	err := d.AddNode(&fakeNode{id: "a", log: &log})
	require.Error(t, err)
	var dup *dagerr.DuplicateNodeId
	assert.ErrorAs(t, err, &dup)
}

func TestDAG_MissingDependency(t *testing.T) {
	d := New()
	var log []string
	require.NoError(t, d.AddNode(&fakeNode{id: "a", deps: []string{"ghost"}, log: &log}))

	err := d.Validate()
	require.Error(t, err)
	var missing *dagerr.MissingDependency
	assert.ErrorAs(t, err, &missing)
}

func TestDAG_CycleDetected(t *testing.T) {
	d := New()
	var log []string
	require.NoError(t, d.AddNode(&fakeNode{id: "a", deps: []string{"b"}, log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "b", deps: []string{"a"}, log: &log}))

	err := d.Validate()
	require.Error(t, err)
	var cycle *dagerr.CycleDetected
	assert.ErrorAs(t, err, &cycle)
}

func TestDAG_ExecuteDaily_RunsInOrderAndRecordsOutputs(t *testing.T) {
	var log []string
	d := New()
	require.NoError(t, d.AddNode(&fakeNode{id: "leaf", log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "dependent", deps: []string{"leaf"}, log: &log}))

	state := newTestState(t)
	stream := rng.New(1)

	_, err := d.ExecuteDaily(state, state.CurrentDate, stream)
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf", "dependent"}, log)
}

func TestDAG_RemoveNode_InvalidatesCache(t *testing.T) {
	var log []string
	d := New()
	require.NoError(t, d.AddNode(&fakeNode{id: "a", log: &log}))
	require.NoError(t, d.AddNode(&fakeNode{id: "b", log: &log}))

	order, err := d.ExecutionOrder()
	require.NoError(t, err)
	assert.Len(t, order, 2)

	d.RemoveNode("a")
	order, err = d.ExecutionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, order)
}
