package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/engine"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/nodes"
	"personalfinancedss/internal/core/wallet"
)

func testConfig(seed int64) wallet.Config {
	return wallet.Config{
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		InitialBalance:     money.New(5000),
		InitialCreditScore: wallet.DefaultInitialCreditScore,
		RandomSeed:         seed,
		BaseCurrency:       "USD",
	}
}

func testFactory(seed int64) (*engine.Engine, error) {
	g := dag.New()
	if err := g.AddNode(nodes.NewSalaryNode("salary", money.New(4000), 1)); err != nil {
		return nil, err
	}
	if err := g.AddNode(nodes.NewVariableExpenseNode("daily_expenses", money.New(40), money.New(15), "daily expenses")); err != nil {
		return nil, err
	}
	return engine.New(testConfig(seed), g, nil, zap.NewNop())
}

func TestScheduler_RunOnce_BuildsCrossScenarioReport(t *testing.T) {
	sched := NewScheduler(testFactory, []int64{1, 2, 3, 4, 5}, zap.NewNop())

	report, err := sched.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, report.SampleSize)
}

func TestScheduler_RunOnce_PropagatesFactoryError(t *testing.T) {
	failing := func(seed int64) (*engine.Engine, error) {
		return nil, assertErr
	}
	sched := NewScheduler(failing, []int64{1}, zap.NewNop())

	_, err := sched.RunOnce(context.Background())
	require.Error(t, err)
}

func TestScheduler_Subscribe_ReceivesReportAfterRunOnce(t *testing.T) {
	sched := NewScheduler(testFactory, []int64{1, 2}, zap.NewNop())
	_, ch := sched.Subscribe()

	_, err := sched.RunOnce(context.Background())
	require.NoError(t, err)

	select {
	case report := <-ch:
		require.Equal(t, 2, report.SampleSize)
	default:
		t.Fatal("expected a report to be published")
	}
}

func TestScheduler_StartStop_GuardsDoubleStart(t *testing.T) {
	sched := NewScheduler(testFactory, []int64{1}, zap.NewNop())

	sched.Start("*/1 * * * * *")
	sched.Start("*/1 * * * * *")
	sched.Stop()
	sched.Stop()
}

var assertErr = errTest("sweep factory failure")

type errTest string

func (e errTest) Error() string { return string(e) }
