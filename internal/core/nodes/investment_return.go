package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// InvestmentReturnNode accrues a daily return on every investment asset
// (stocks, bonds, crypto) and, per spec.md §9's documented (not
// "silently fixed") open question, credits the same gain to both the
// asset's value and the wallet's cash balance — the source's
// double-counting of realized vs. unrealized gains is preserved
// deliberately for bit-exact parity; see DESIGN.md.
type InvestmentReturnNode struct {
	id               string
	deps             []string
	annualReturnRate money.Amount
}

// NewInvestmentReturnNode constructs an InvestmentReturnNode.
func NewInvestmentReturnNode(id string, annualReturnRate money.Amount, deps ...string) *InvestmentReturnNode {
	return &InvestmentReturnNode{id: id, deps: deps, annualReturnRate: annualReturnRate}
}

func (n *InvestmentReturnNode) ID() string             { return n.id }
func (n *InvestmentReturnNode) Dependencies() []string { return n.deps }

func (n *InvestmentReturnNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	total := money.Zero

	// Assets are iterated in insertion order (AssetSet guarantees this),
	// and mutated in place via Get/Put rather than during Each, since Each
	// holds no lock but spec.md requires the iteration order itself to be
	// the stable, observable thing — not a snapshot of values mid-loop.
	for _, name := range state.Assets.Names() {
		asset, ok := state.Assets.Get(name)
		if !ok || !asset.IsInvestment() {
			continue
		}

		daily := asset.Value.Mul(n.annualReturnRate).Div(money.New(365))
		noise := ctx.RNG.Gauss(1.0, 0.01)
		gain := daily.MulFloat(noise)

		asset.Value = asset.Value.Add(gain)
		state.Assets.Put(asset)

		state.Credit(gain, "investment return: "+name, wallet.CategoryInvestment)
		state.TotalIncomeYTD = state.TotalIncomeYTD.Add(gain)

		total = total.Add(gain)
	}

	return total
}
