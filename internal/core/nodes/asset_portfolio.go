package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// AssetPortfolioNode performs no mutation. It exists purely as a scheduling
// landmark so LiquidationNode and AssetPurchaseNode can declare a dependency
// on "the portfolio valuation for the day" rather than recomputing it twice.
type AssetPortfolioNode struct {
	id   string
	deps []string
}

// NewAssetPortfolioNode constructs an AssetPortfolioNode.
func NewAssetPortfolioNode(id string, deps ...string) *AssetPortfolioNode {
	return &AssetPortfolioNode{id: id, deps: deps}
}

func (n *AssetPortfolioNode) ID() string             { return n.id }
func (n *AssetPortfolioNode) Dependencies() []string { return n.deps }

func (n *AssetPortfolioNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	return state.TotalAssets()
}
