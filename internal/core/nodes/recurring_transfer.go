package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// RecurringTransferNode moves a fixed amount from one asset bucket to
// another once per month — a scheduled internal transfer supplemental to
// spec.md's node list (see SPEC_FULL.md §4.E), grounded as a thin
// specialization combining FixedExpenseNode's monthly gating with
// AssetPurchaseNode's asset-bucket bookkeeping. Off by default: a scenario
// with no RecurringTransferNode instances behaves exactly as spec.md
// describes.
type RecurringTransferNode struct {
	id         string
	deps       []string
	fromAsset  string
	toAsset    string
	amount     money.Amount
	paymentDay int
	gate       monthlyGate
}

// NewRecurringTransferNode constructs a RecurringTransferNode.
func NewRecurringTransferNode(id, fromAsset, toAsset string, amount money.Amount, paymentDay int, deps ...string) *RecurringTransferNode {
	if paymentDay == 0 {
		paymentDay = 1
	}
	return &RecurringTransferNode{id: id, deps: deps, fromAsset: fromAsset, toAsset: toAsset, amount: amount, paymentDay: paymentDay}
}

func (n *RecurringTransferNode) ID() string             { return n.id }
func (n *RecurringTransferNode) Dependencies() []string { return n.deps }

func (n *RecurringTransferNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if !n.gate.due(ctx.CurrentDate, n.paymentDay) {
		return money.Zero
	}

	source, ok := state.Assets.Get(n.fromAsset)
	if !ok || source.Value.LessThan(n.amount) {
		return money.Zero
	}

	source.Value = source.Value.Sub(n.amount)
	state.Assets.Put(source)

	dest, ok := state.Assets.Get(n.toAsset)
	if !ok {
		var err error
		dest, err = wallet.NewAsset(n.toAsset, source.Type, money.Zero, source.IsLiquid, source.LiquidationPenalty)
		if err != nil {
			return money.Zero
		}
	}
	dest.Value = dest.Value.Add(n.amount)
	state.Assets.Put(dest)

	return n.amount
}
