package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// AssetPurchaseNode sweeps surplus cash above investmentThreshold into a
// named asset bucket, creating it on first use.
type AssetPurchaseNode struct {
	id                   string
	deps                 []string
	targetAssetType      wallet.AssetType
	investmentThreshold  money.Amount
	investmentPercentage float64
}

// NewAssetPurchaseNode constructs an AssetPurchaseNode.
func NewAssetPurchaseNode(id string, targetAssetType wallet.AssetType, investmentThreshold money.Amount, investmentPercentage float64, deps ...string) *AssetPurchaseNode {
	return &AssetPurchaseNode{
		id:                   id,
		deps:                 deps,
		targetAssetType:      targetAssetType,
		investmentThreshold:  investmentThreshold,
		investmentPercentage: investmentPercentage,
	}
}

func (n *AssetPurchaseNode) ID() string             { return n.id }
func (n *AssetPurchaseNode) Dependencies() []string { return n.deps }

func (n *AssetPurchaseNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	surplus := state.Balance.Sub(n.investmentThreshold)
	if !surplus.IsPos() {
		return money.Zero
	}

	investmentAmount := surplus.MulFloat(n.investmentPercentage)
	assetName := string(n.targetAssetType) + "_portfolio"

	asset, ok := state.Assets.Get(assetName)
	if !ok {
		var err error
		asset, err = wallet.NewAsset(assetName, n.targetAssetType, money.Zero, true, money.FromFloat(0.02))
		if err != nil {
			return money.Zero
		}
	}

	asset.Value = asset.Value.Add(investmentAmount)
	state.Assets.Put(asset)

	state.Debit(investmentAmount, "asset purchase: "+assetName, wallet.CategoryInvestment)
	return investmentAmount
}
