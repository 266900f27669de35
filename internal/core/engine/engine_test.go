package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/nodes"
	"personalfinancedss/internal/core/state"
	"personalfinancedss/internal/core/wallet"
)

func baselineConfig(seed int64) wallet.Config {
	return wallet.Config{
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		InitialBalance:     money.New(10000),
		InitialCreditScore: wallet.DefaultInitialCreditScore,
		RandomSeed:         seed,
		BaseCurrency:       "USD",
	}
}

func baselineDAG(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New()
	require.NoError(t, g.AddNode(nodes.NewSalaryNode("salary", money.New(60000), 1)))
	require.NoError(t, g.AddNode(nodes.NewFixedExpenseNode("rent", money.New(1500), 1, "rent")))
	require.NoError(t, g.AddNode(nodes.NewVariableExpenseNode("daily_expenses", money.New(50), money.New(20), "daily expenses")))
	return g
}

func TestEngine_Run_DeterministicAcrossRuns_S1(t *testing.T) {
	ctx := context.Background()

	engineA, err := New(baselineConfig(42), baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, engineA.Run(ctx))

	engineB, err := New(baselineConfig(42), baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, engineB.Run(ctx))

	require.True(t, engineA.Result().FinalBalance.Equal(engineB.Result().FinalBalance))
	require.Len(t, engineA.DailyMetrics(), 366)
	require.Len(t, engineB.DailyMetrics(), 366)
}

func TestEngine_Run_SeedDivergence_S2(t *testing.T) {
	ctx := context.Background()

	engineA, err := New(baselineConfig(42), baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, engineA.Run(ctx))

	engineB, err := New(baselineConfig(99), baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, engineB.Run(ctx))

	require.False(t, engineA.Result().FinalBalance.Equal(engineB.Result().FinalBalance))
}

func TestEngine_Step_BankruptcyStopsRun(t *testing.T) {
	ctx := context.Background()

	g := dag.New()
	require.NoError(t, g.AddNode(nodes.NewFixedExpenseNode("rent", money.New(100000), 1, "rent")))
	require.NoError(t, g.AddNode(nodes.NewBankruptcyCheckNode("bankruptcy", money.New(-50000), "rent")))

	cfg := baselineConfig(1)
	cfg.InitialBalance = money.New(0)

	e, err := New(cfg, g, nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.Run(ctx))

	require.True(t, e.State().IsBankrupt)
	require.Less(t, len(e.DailyMetrics()), 366)
}

func TestEngine_Subscribe_ReceivesDailyMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := baselineConfig(7)
	cfg.EndDate = cfg.StartDate.AddDate(0, 0, 4)

	e, err := New(cfg, baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)

	_, ch := e.Subscribe()
	require.NoError(t, e.Run(ctx))

	count := 0
	for {
		select {
		case <-ch:
			count++
		default:
			require.Equal(t, 5, count)
			return
		}
	}
}

func TestEngine_SnapshotAndBranch_ContinuesDeterministically(t *testing.T) {
	ctx := context.Background()
	cfg := baselineConfig(42)
	cfg.EndDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	e, err := New(cfg, baselineDAG(t), nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.Run(ctx))

	snapID, err := e.CreateSnapshot(ctx, "mid year")
	require.NoError(t, err)

	raise := e.State().Balance.Add(money.New(10000))
	branch, err := e.CreateBranch(ctx, snapID, state.Modifications{Balance: &raise})
	require.NoError(t, err)

	branch.cfg.EndDate = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, branch.Run(ctx))

	require.True(t, branch.State().Balance.GreaterThan(e.State().Balance))

	rebranch, err := e.CreateBranch(ctx, snapID, state.Modifications{Balance: &raise})
	require.NoError(t, err)
	rebranch.cfg.EndDate = branch.cfg.EndDate
	require.NoError(t, rebranch.Run(ctx))
	require.True(t, rebranch.State().Balance.Equal(branch.State().Balance))
}
