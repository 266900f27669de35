package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// BankruptcyCheckNode runs last in the DAG order. Once net worth collapses
// below threshold with no liquid cushion left, it flags the wallet as
// bankrupt; the engine's day loop observes the flag and stops simulating.
type BankruptcyCheckNode struct {
	id        string
	deps      []string
	threshold money.Amount
}

// NewBankruptcyCheckNode constructs a BankruptcyCheckNode. threshold
// defaults to -50000 when the zero value is passed.
func NewBankruptcyCheckNode(id string, threshold money.Amount, deps ...string) *BankruptcyCheckNode {
	if threshold.IsZero() {
		threshold = money.New(-50000)
	}
	return &BankruptcyCheckNode{id: id, deps: deps, threshold: threshold}
}

func (n *BankruptcyCheckNode) ID() string             { return n.id }
func (n *BankruptcyCheckNode) Dependencies() []string { return n.deps }

func (n *BankruptcyCheckNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if state.NetWorth().GreaterThanOrEqual(n.threshold) || state.LiquidAssets().GreaterThanOrEqual(money.New(100)) {
		return money.Zero
	}

	state.IsBankrupt = true
	state.CreditScore = wallet.CreditScoreFloor
	state.Append(money.Zero, "bankruptcy", wallet.CategoryBankruptcy)
	return money.New(1)
}
