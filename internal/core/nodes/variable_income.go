package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/wallet"
)

// VariableIncomeNode models irregular income (freelance, commission): each
// day it draws a uniform value, and if it clears the payment probability
// threshold it draws a gaussian amount and credits it, per spec.md §4.E.
type VariableIncomeNode struct {
	id                 string
	deps               []string
	meanMonthly        money.Amount
	stdDev             money.Amount
	paymentProbability float64
}

// NewVariableIncomeNode constructs a VariableIncomeNode.
func NewVariableIncomeNode(id string, meanMonthly, stdDev money.Amount, paymentProbability float64, deps ...string) *VariableIncomeNode {
	return &VariableIncomeNode{
		id:                 id,
		deps:               deps,
		meanMonthly:        meanMonthly,
		stdDev:             stdDev,
		paymentProbability: paymentProbability,
	}
}

func (n *VariableIncomeNode) ID() string             { return n.id }
func (n *VariableIncomeNode) Dependencies() []string { return n.deps }

func (n *VariableIncomeNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	u := ctx.RNG.Uniform01()
	if u >= n.paymentProbability {
		return money.Zero
	}

	x := ctx.RNG.Gauss(n.meanMonthly.Float64(), n.stdDev.Float64())
	amount := money.FromFloat(rng.ClampNonNegative(x))

	state.Credit(amount, "variable income", wallet.CategoryIncomeVariable)
	state.TotalIncomeYTD = state.TotalIncomeYTD.Add(amount)
	return amount
}
