package wallet

import (
	"encoding/json"

	"personalfinancedss/internal/core/money"
)

// AssetType enumerates the facet an Asset models, per spec.md §3.
type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetStocks     AssetType = "stocks"
	AssetBonds      AssetType = "bonds"
	AssetRealEstate AssetType = "real_estate"
	AssetCrypto     AssetType = "crypto"
	AssetOther      AssetType = "other"
)

// Asset is one holding in a wallet. Name is unique within a wallet's asset
// set, enforced by AssetSet.
type Asset struct {
	Name               string
	Type               AssetType
	Value              money.Amount
	IsLiquid           bool
	LiquidationPenalty money.Amount
}

// NewAsset validates range invariants at construction: value >= 0 and
// liquidation penalty in [0, 1].
func NewAsset(name string, typ AssetType, value money.Amount, isLiquid bool, penalty money.Amount) (Asset, error) {
	if value.IsNeg() {
		return Asset{}, newRangeErr("value", value.StringExact(), "value >= 0")
	}
	if penalty.IsNeg() || penalty.GreaterThan(money.New(1)) {
		return Asset{}, newRangeErr("liquidation_penalty", penalty.StringExact(), "penalty in [0,1]")
	}
	return Asset{Name: name, Type: typ, Value: value, IsLiquid: isLiquid, LiquidationPenalty: penalty}, nil
}

// IsInvestment reports whether an asset participates in
// InvestmentReturnNode (spec.md §4.E): stocks, bonds, or crypto.
func (a Asset) IsInvestment() bool {
	switch a.Type {
	case AssetStocks, AssetBonds, AssetCrypto:
		return true
	default:
		return false
	}
}

// AssetSet is an insertion-ordered collection of Assets keyed by name. It
// exists so "map iteration order must be stable" invariants (spec.md §3,
// §4.E InvestmentReturnNode) are guaranteed by the type rather than by
// caller discipline — a plain map[string]Asset cannot make that promise.
type AssetSet struct {
	order []string
	byKey map[string]Asset
}

// NewAssetSet returns an empty, ready-to-use AssetSet.
func NewAssetSet() *AssetSet {
	return &AssetSet{byKey: make(map[string]Asset)}
}

// Put inserts or replaces an asset, preserving its original insertion
// position on replace.
func (s *AssetSet) Put(a Asset) {
	if _, exists := s.byKey[a.Name]; !exists {
		s.order = append(s.order, a.Name)
	}
	s.byKey[a.Name] = a
}

// Get returns the asset by name and whether it exists.
func (s *AssetSet) Get(name string) (Asset, bool) {
	a, ok := s.byKey[name]
	return a, ok
}

// Remove deletes the named asset. Idempotent.
func (s *AssetSet) Remove(name string) {
	if _, exists := s.byKey[name]; !exists {
		return
	}
	delete(s.byKey, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of assets held.
func (s *AssetSet) Len() int { return len(s.order) }

// Each iterates assets in insertion order, matching spec.md's "stable
// across runs" requirement for InvestmentReturnNode and LiquidationNode.
func (s *AssetSet) Each(fn func(Asset)) {
	for _, name := range s.order {
		fn(s.byKey[name])
	}
}

// Names returns the insertion-ordered asset names.
func (s *AssetSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Total sums the value of every asset held.
func (s *AssetSet) Total() money.Amount {
	total := money.Zero
	s.Each(func(a Asset) { total = total.Add(a.Value) })
	return total
}

// Liquid sums the value of liquid assets only.
func (s *AssetSet) Liquid() money.Amount {
	total := money.Zero
	s.Each(func(a Asset) {
		if a.IsLiquid {
			total = total.Add(a.Value)
		}
	})
	return total
}

// Clone performs a deep copy — the AssetSet itself and every Asset value
// it holds are independent of the original afterward. Used by
// WalletState.DeepCopy for snapshot isolation.
func (s *AssetSet) Clone() *AssetSet {
	out := NewAssetSet()
	s.Each(func(a Asset) { out.Put(a) })
	return out
}

// MarshalJSON emits assets as an insertion-ordered array, since
// encoding/json has no stable ordering for maps and this type's whole
// purpose is a guaranteed iteration order.
func (s *AssetSet) MarshalJSON() ([]byte, error) {
	assets := make([]Asset, 0, s.Len())
	s.Each(func(a Asset) { assets = append(assets, a) })
	return json.Marshal(assets)
}

// UnmarshalJSON restores an AssetSet from the array MarshalJSON produces,
// preserving array order as insertion order.
func (s *AssetSet) UnmarshalJSON(data []byte) error {
	var assets []Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return err
	}
	*s = *NewAssetSet()
	for _, a := range assets {
		s.Put(a)
	}
	return nil
}
