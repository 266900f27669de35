package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// CreditScoreNode runs daily, summing three additive impact terms — debt
// ratio, payment punctuality, balance health — the way the teacher's
// goal_prioritization package sums weighted condition buckets into an AHP
// score, then adds alpha times that sum to credit_score and clamps it to
// [300, 850].
type CreditScoreNode struct {
	id    string
	deps  []string
	alpha float64
}

// NewCreditScoreNode constructs a CreditScoreNode. alpha defaults to 0.1
// when zero.
func NewCreditScoreNode(id string, alpha float64, deps ...string) *CreditScoreNode {
	if alpha == 0 {
		alpha = 0.1
	}
	return &CreditScoreNode{id: id, deps: deps, alpha: alpha}
}

func (n *CreditScoreNode) ID() string             { return n.id }
func (n *CreditScoreNode) Dependencies() []string { return n.deps }

func (n *CreditScoreNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	impact := 0.0

	floorIncome := money.Max(state.TotalIncomeYTD, money.New(50000))
	debtRatio := state.TotalDebt().Div(floorIncome).Float64()
	switch {
	case debtRatio < 0.3:
		impact += 2.0
	case debtRatio < 0.5:
		impact += 0.0
	default:
		impact -= 3.0
	}

	missed := state.TotalMissedPayments()
	switch {
	case missed == 0:
		impact += 1.0
	case missed <= 2:
		impact -= 2.0
	default:
		impact -= 5.0
	}

	balance := state.Balance.Float64()
	switch {
	case balance > 10000:
		impact += 1.0
	case balance > 0:
		impact += 0.5
	case balance > -1000:
		impact -= 1.0
	default:
		impact -= 3.0
	}

	delta := money.FromFloat(n.alpha * impact)
	state.CreditScore = state.CreditScore.Add(delta)
	state.ClampCreditScore()

	return delta
}
