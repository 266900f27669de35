package nodes

import (
	"container/heap"

	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// LiquidationNode drains liquid assets, cheapest-penalty-first, whenever the
// balance falls below threshold. The priority queue is keyed by
// (liquidation_penalty, asset_name) — name is the deterministic tie-break
// required by spec.md §4.E. container/heap is standard library; no example
// repo in the pack ships a priority-queue type, see DESIGN.md.
type LiquidationNode struct {
	id        string
	deps      []string
	threshold money.Amount
}

// NewLiquidationNode constructs a LiquidationNode. threshold defaults to
// zero when the caller wants the spec default of min_balance_threshold=0.
func NewLiquidationNode(id string, threshold money.Amount, deps ...string) *LiquidationNode {
	return &LiquidationNode{id: id, deps: deps, threshold: threshold}
}

func (n *LiquidationNode) ID() string             { return n.id }
func (n *LiquidationNode) Dependencies() []string { return n.deps }

type liquidationCandidate struct {
	name    string
	penalty money.Amount
}

type liquidationQueue []liquidationCandidate

func (q liquidationQueue) Len() int { return len(q) }

func (q liquidationQueue) Less(i, j int) bool {
	if q[i].penalty.Equal(q[j].penalty) {
		return q[i].name < q[j].name
	}
	return q[i].penalty.LessThan(q[j].penalty)
}

func (q liquidationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *liquidationQueue) Push(x any) { *q = append(*q, x.(liquidationCandidate)) }

func (q *liquidationQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (n *LiquidationNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if state.Balance.GreaterThanOrEqual(n.threshold) {
		return money.Zero
	}

	deficit := n.threshold.Sub(state.Balance)
	one := money.New(1)

	q := &liquidationQueue{}
	heap.Init(q)
	state.Assets.Each(func(a wallet.Asset) {
		if a.IsLiquid {
			heap.Push(q, liquidationCandidate{name: a.Name, penalty: a.LiquidationPenalty})
		}
	})

	credited := money.Zero
	var toRemove []string

	for q.Len() > 0 && deficit.IsPos() {
		cand := heap.Pop(q).(liquidationCandidate)
		asset, ok := state.Assets.Get(cand.name)
		if !ok {
			continue
		}

		retained := one.Sub(asset.LiquidationPenalty)
		netValue := asset.Value.Mul(retained)

		if netValue.GreaterThanOrEqual(deficit) {
			amountNeeded := deficit.Div(retained)
			asset.Value = asset.Value.Sub(amountNeeded)
			state.Assets.Put(asset)

			state.Credit(deficit, "partial liquidation: "+asset.Name, wallet.CategoryLiquidation)
			credited = credited.Add(deficit)
			deficit = money.Zero
			continue
		}

		state.Credit(netValue, "full liquidation: "+asset.Name, wallet.CategoryLiquidation)
		credited = credited.Add(netValue)
		deficit = deficit.Sub(netValue)
		toRemove = append(toRemove, asset.Name)
	}

	for _, name := range toRemove {
		state.Assets.Remove(name)
	}

	return credited
}
