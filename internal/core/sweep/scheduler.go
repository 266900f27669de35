// Package sweep periodically fans out independent engine runs over a seed
// set and feeds their results to analytics.CrossScenarioReport, per
// SPEC_FULL.md §4.I. Grounded directly on the teacher's
// internal/module/notification/service/scheduler_service.go: a
// second-precision robfig/cron instance, a constructor-injected
// *zap.Logger, Start/Stop lifecycle methods, isRunning guarded by a mutex.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"personalfinancedss/internal/core/analytics"
	"personalfinancedss/internal/core/engine"
	"personalfinancedss/internal/core/wallet"
)

// EngineFactory builds a fresh Engine for one seed. A fresh DAG must be
// constructed inside the factory per call — spec.md §5's concurrency rule
// requires each concurrently-run engine to own its own DAG, RNG, and
// wallet state, since most nodes hold per-instance bookkeeping.
type EngineFactory func(seed int64) (*engine.Engine, error)

// Scheduler runs a scenario sweep (a fixed seed set through EngineFactory)
// on a cron schedule, publishing each run's CrossScenarioReport to
// subscribers.
type Scheduler struct {
	cron    *cron.Cron
	factory EngineFactory
	seeds   []int64
	logger  *zap.Logger

	mu        sync.Mutex
	isRunning bool

	reportMu sync.RWMutex
	reports  map[int]chan analytics.CrossScenarioReport
	nextID   int
}

// NewScheduler constructs a Scheduler over a fixed seed set.
func NewScheduler(factory EngineFactory, seeds []int64, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		factory: factory,
		seeds:   seeds,
		logger:  logger,
		reports: make(map[int]chan analytics.CrossScenarioReport),
	}
}

// Subscribe returns a subscriber id and a buffered channel receiving a
// CrossScenarioReport after each scheduled sweep completes.
func (s *Scheduler) Subscribe() (int, <-chan analytics.CrossScenarioReport) {
	s.reportMu.Lock()
	defer s.reportMu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan analytics.CrossScenarioReport, 8)
	s.reports[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *Scheduler) Unsubscribe(id int) {
	s.reportMu.Lock()
	defer s.reportMu.Unlock()
	if ch, ok := s.reports[id]; ok {
		close(ch)
		delete(s.reports, id)
	}
}

func (s *Scheduler) publish(r analytics.CrossScenarioReport) {
	s.reportMu.RLock()
	defer s.reportMu.RUnlock()
	for _, ch := range s.reports {
		select {
		case ch <- r:
		default:
		}
	}
}

// RunOnce fans the seed set out across fresh engines, collects their
// results, and returns the cross-scenario report, publishing it to
// subscribers along the way. Each engine's Run executes on its own
// goroutine — safe because every engine owns an independently-constructed
// DAG, RNG stream, and wallet state (spec.md §5).
func (s *Scheduler) RunOnce(ctx context.Context) (analytics.CrossScenarioReport, error) {
	results := make([]*wallet.Result, len(s.seeds))
	errs := make([]error, len(s.seeds))

	var wg sync.WaitGroup
	for i, seed := range s.seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			eng, err := s.factory(seed)
			if err != nil {
				errs[i] = fmt.Errorf("sweep: build engine for seed %d: %w", seed, err)
				return
			}
			if err := eng.Run(ctx); err != nil {
				errs[i] = fmt.Errorf("sweep: run engine for seed %d: %w", seed, err)
				return
			}
			results[i] = eng.Result()
		}(i, seed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return analytics.CrossScenarioReport{}, err
		}
	}

	report := analytics.BuildCrossScenarioReport(results)
	s.publish(report)
	return report, nil
}

// Start schedules RunOnce on cronExpr (seconds-precision, e.g.
// "0 0 * * * *" for hourly) and starts the cron loop. Errors scheduling
// the job are logged, matching the teacher's scheduler service — a
// misconfigured cron expression should not crash the process that
// constructed the Scheduler.
func (s *Scheduler) Start(cronExpr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		s.logger.Warn("sweep scheduler already running")
		return
	}

	_, err := s.cron.AddFunc(cronExpr, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("scenario sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to schedule scenario sweep", zap.Error(err))
		return
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scenario sweep scheduler started", zap.Int("seeds", len(s.seeds)))
}

// Stop gracefully drains any in-flight cron job before returning.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("scenario sweep scheduler stopped")
}
