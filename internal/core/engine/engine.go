// Package engine implements the simulation driver: the daily step loop,
// snapshot/branch orchestration, and an optional progress-subscriber hook,
// per spec.md §4.F and SPEC_FULL.md §4.F.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/state"
	"personalfinancedss/internal/core/store"
	"personalfinancedss/internal/core/wallet"
)

// Engine owns one simulation's live wallet state, its DAG, and its RNG
// stream, and drives the day loop described in spec.md §4.F. Grounded on
// the teacher's constructor-injected *zap.Logger service shape, and on
// mini-world's Simulation type for the day-stepping-plus-subscriber shape
// (see SPEC_FULL.md §4.F).
type Engine struct {
	cfg        wallet.Config
	graph      *dag.DAG
	state      *wallet.State
	stream     *rng.Stream
	mgr        *state.Manager
	timelineID string
	logger     *zap.Logger

	dailyMetrics []DailyMetric

	subMu     sync.RWMutex
	subs      map[int]chan DailyMetric
	nextSubID int
}

// New constructs an Engine: validates the DAG, allocates the initial
// wallet state from cfg, seeds the RNG, captures its state into the
// wallet, and records the initial timeline via a fresh state.Manager.
func New(cfg wallet.Config, graph *dag.DAG, backend store.SnapshotStore, logger *zap.Logger) (*Engine, error) {
	if err := graph.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid dag: %w", err)
	}

	initial, err := wallet.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}

	stream := rng.New(cfg.RandomSeed)
	initial.RNGState = stream.ExportState()

	mgr := state.NewManager(initial, backend, logger)

	return &Engine{
		cfg:        cfg,
		graph:      graph,
		state:      initial,
		stream:     stream,
		mgr:        mgr,
		timelineID: mgr.CurrentTimelineID(),
		logger:     logger,
		subs:       make(map[int]chan DailyMetric),
	}, nil
}

// newBranch constructs an Engine around an already-branched state, stream,
// and timeline id, sharing the state.Manager with the engine the branch
// came from so that switching timelines and re-branching see every branch's
// history. Each Engine sharing that Manager keeps its own timelineID so
// that one engine's Step/AddState calls can never land in another's
// timeline, even though both hold the same *state.Manager. The DAG is
// shared with the parent engine too: branching continues the same simulated
// node graph (and its per-node monthly-payment bookkeeping), it does not
// start a fresh one — that rule exists for concurrent scenario sweeps, not
// sequential what-if branches (see DESIGN.md).
func newBranch(cfg wallet.Config, graph *dag.DAG, timelineID string, branched *wallet.State, stream *rng.Stream, mgr *state.Manager, logger *zap.Logger) *Engine {
	cfg.StartDate = branched.CurrentDate
	return &Engine{
		cfg:        cfg,
		graph:      graph,
		state:      branched,
		stream:     stream,
		mgr:        mgr,
		timelineID: timelineID,
		logger:     logger,
		subs:       make(map[int]chan DailyMetric),
	}
}

// Subscribe returns a subscriber id and a buffered channel of DailyMetric
// rows emitted as Run/Step progresses. A slow consumer drops events rather
// than blocking the simulation, same tradeoff as mini-world's EmitEvent.
func (e *Engine) Subscribe() (int, <-chan DailyMetric) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	id := e.nextSubID
	e.nextSubID++
	ch := make(chan DailyMetric, 64)
	e.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (e *Engine) Unsubscribe(id int) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	if ch, ok := e.subs[id]; ok {
		close(ch)
		delete(e.subs, id)
	}
}

func (e *Engine) publish(m DailyMetric) {
	e.subMu.RLock()
	defer e.subMu.RUnlock()
	for _, ch := range e.subs {
		select {
		case ch <- m:
		default:
		}
	}
}

// Step advances the simulation exactly one day: sets the current date,
// executes the DAG, captures RNG state, records a metric row, deep-copies
// the state into the active timeline, and reports whether bankruptcy
// tripped (the caller should stop calling Step if so), per spec.md §4.F.
func (e *Engine) Step(ctx context.Context, date time.Time) (bankrupt bool, err error) {
	e.state.CurrentDate = date

	if _, err := e.graph.ExecuteDaily(e.state, date, e.stream); err != nil {
		return false, fmt.Errorf("engine: execute daily: %w", err)
	}

	e.state.RNGState = e.stream.ExportState()

	metric := DailyMetric{
		Date:         date,
		Balance:      e.state.Balance,
		CreditScore:  e.state.CreditScore,
		TotalAssets:  e.state.TotalAssets(),
		TotalDebt:    e.state.TotalDebt(),
		NetWorth:     e.state.NetWorth(),
		LiquidAssets: e.state.LiquidAssets(),
	}
	e.dailyMetrics = append(e.dailyMetrics, metric)
	e.publish(metric)

	e.mgr.AddState(e.timelineID, date, e.state.DeepCopy())

	return e.state.IsBankrupt, nil
}

// Run executes the day loop from cfg.StartDate through cfg.EndDate
// (inclusive), stopping early if bankruptcy trips.
func (e *Engine) Run(ctx context.Context) error {
	for d := e.cfg.StartDate; !d.After(e.cfg.EndDate); d = d.AddDate(0, 0, 1) {
		bankrupt, err := e.Step(ctx, d)
		if err != nil {
			return err
		}
		if bankrupt {
			e.logger.Info("simulation stopped: bankruptcy", zap.Time("date", d))
			break
		}
	}
	return nil
}

// CreateSnapshot deep-copies the live state into the active timeline's
// snapshot map via the state manager.
func (e *Engine) CreateSnapshot(ctx context.Context, description string) (string, error) {
	return e.mgr.CreateSnapshot(ctx, e.timelineID, e.state, description)
}

// CreateBranch locates snapshotID in any timeline, applies mods, and
// returns a new Engine continuing from the branch point with an
// independent wallet state, RNG, and timeline id, but the same node graph
// and state manager as the engine it was branched from.
func (e *Engine) CreateBranch(ctx context.Context, snapshotID string, mods state.Modifications) (*Engine, error) {
	newID, branched, stream, err := e.mgr.BranchFromSnapshot(ctx, snapshotID, mods)
	if err != nil {
		return nil, err
	}
	return newBranch(e.cfg, e.graph, newID, branched, stream, e.mgr, e.logger), nil
}

// DailyMetrics returns every metric row recorded so far.
func (e *Engine) DailyMetrics() []DailyMetric {
	out := make([]DailyMetric, len(e.dailyMetrics))
	copy(out, e.dailyMetrics)
	return out
}

// TimelineData returns this engine's own timeline.
func (e *Engine) TimelineData() (*wallet.Timeline, error) {
	return e.mgr.GetTimeline(e.timelineID)
}

// State exposes the live wallet state for callers that need direct read
// access (e.g. analytics, a branch's modifications).
func (e *Engine) State() *wallet.State { return e.state }

// Result assembles a SimulationResult from the final state. Statistical
// and behavioral fields are left nil; analytics.GeneratePacket populates
// them from this Result plus the engine's DailyMetrics.
func (e *Engine) Result() *wallet.Result {
	return &wallet.Result{
		Config:       e.cfg,
		FinalState:   e.state,
		TimelineID:   e.timelineID,
		FinalBalance: e.state.Balance,
	}
}
