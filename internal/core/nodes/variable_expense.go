package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/rng"
	"personalfinancedss/internal/core/wallet"
)

// VariableExpenseNode debits a daily gaussian-distributed amount (groceries,
// discretionary spending), floored at zero, per spec.md §4.E.
type VariableExpenseNode struct {
	id          string
	deps        []string
	dailyMean   money.Amount
	dailyStdDev money.Amount
	description string
}

// NewVariableExpenseNode constructs a VariableExpenseNode.
func NewVariableExpenseNode(id string, dailyMean, dailyStdDev money.Amount, description string, deps ...string) *VariableExpenseNode {
	return &VariableExpenseNode{id: id, deps: deps, dailyMean: dailyMean, dailyStdDev: dailyStdDev, description: description}
}

func (n *VariableExpenseNode) ID() string             { return n.id }
func (n *VariableExpenseNode) Dependencies() []string { return n.deps }

func (n *VariableExpenseNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	x := ctx.RNG.Gauss(n.dailyMean.Float64(), n.dailyStdDev.Float64())
	amount := money.FromFloat(rng.ClampNonNegative(x))
	if amount.IsZero() {
		return money.Zero
	}

	state.Debit(amount, n.description, wallet.CategoryExpenseVariable)
	state.TotalExpensesYTD = state.TotalExpensesYTD.Add(amount)
	return amount
}
