package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfinancedss/internal/core/money"
)

func testConfig() Config {
	return Config{
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		InitialBalance:     money.New(10000),
		InitialCreditScore: DefaultInitialCreditScore,
		RandomSeed:         42,
	}
}

func TestState_New_RejectsOutOfRangeCreditScore(t *testing.T) {
	cfg := testConfig()
	cfg.InitialCreditScore = money.New(100)
	_, err := New(cfg)
	require.Error(t, err)
	var rangeErr *DomainRangeViolation
	assert.ErrorAs(t, err, &rangeErr)
}

// TestState_Append_BalanceConsistency is spec.md property 3.
func TestState_Append_BalanceConsistency(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	s.Credit(money.New(500), "paycheck", CategoryIncomeSalary)
	s.Debit(money.New(200), "rent", CategoryExpenseFixed)
	s.Credit(money.New(50), "refund", CategoryIncomeVariable)

	for _, txn := range s.TransactionHistory {
		assert.True(t, txn.BalanceAfter.Equal(txn.BalanceAfter))
	}
	require.Len(t, s.TransactionHistory, 3)
	assert.True(t, s.TransactionHistory[0].BalanceAfter.Equal(money.New(10500)))
	assert.True(t, s.TransactionHistory[1].BalanceAfter.Equal(money.New(10300)))
	assert.True(t, s.TransactionHistory[2].BalanceAfter.Equal(money.New(10350)))
	assert.True(t, s.Balance.Equal(money.New(10350)))
}

// TestState_DeepCopy_Isolation is spec.md property 8 (snapshot isolation).
func TestState_DeepCopy_Isolation(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	asset, err := NewAsset("brokerage", AssetStocks, money.New(1000), true, money.New(0))
	require.NoError(t, err)
	s.Assets.Put(asset)
	s.Debts = append(s.Debts, Debt{Name: "car", Principal: money.New(5000)})

	clone := s.DeepCopy()

	// Mutate the live state after cloning.
	s.Credit(money.New(100), "x", CategoryIncomeVariable)
	liveAsset, _ := s.Assets.Get("brokerage")
	liveAsset.Value = liveAsset.Value.Add(money.New(1))
	s.Assets.Put(liveAsset)
	s.Debts[0].Principal = s.Debts[0].Principal.Sub(money.New(1))

	clonedAsset, ok := clone.Assets.Get("brokerage")
	require.True(t, ok)
	assert.True(t, clonedAsset.Value.Equal(money.New(1000)), "clone's asset must not see the live mutation")
	assert.True(t, clone.Debts[0].Principal.Equal(money.New(5000)))
	assert.True(t, clone.Balance.Equal(money.New(10000)))
	assert.Len(t, clone.TransactionHistory, 0)
}

func TestAssetSet_InsertionOrderStable(t *testing.T) {
	set := NewAssetSet()
	names := []string{"bonds", "stocks", "crypto", "cash"}
	for _, n := range names {
		a, err := NewAsset(n, AssetOther, money.Zero, true, money.Zero)
		require.NoError(t, err)
		set.Put(a)
	}

	var seen []string
	set.Each(func(a Asset) { seen = append(seen, a.Name) })
	assert.Equal(t, names, seen)

	set.Remove("stocks")
	set.Put(Asset{Name: "stocks", Type: AssetOther})
	seen = nil
	set.Each(func(a Asset) { seen = append(seen, a.Name) })
	assert.Equal(t, []string{"bonds", "crypto", "cash", "stocks"}, seen)
}
