package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// Predicate evaluates whether a ConditionalExpenseNode should fire today.
// Must be pure: no RNG draws, no wall-clock reads beyond ctx.CurrentDate.
type Predicate func(state *wallet.State, ctx *dag.Context) bool

// ConditionalExpenseNode debits a fixed amount whenever predicate holds.
type ConditionalExpenseNode struct {
	id          string
	deps        []string
	amount      money.Amount
	predicate   Predicate
	description string
}

// NewConditionalExpenseNode constructs a ConditionalExpenseNode.
func NewConditionalExpenseNode(id string, amount money.Amount, predicate Predicate, description string, deps ...string) *ConditionalExpenseNode {
	return &ConditionalExpenseNode{id: id, deps: deps, amount: amount, predicate: predicate, description: description}
}

func (n *ConditionalExpenseNode) ID() string             { return n.id }
func (n *ConditionalExpenseNode) Dependencies() []string { return n.deps }

func (n *ConditionalExpenseNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if !n.predicate(state, ctx) {
		return money.Zero
	}

	state.Debit(n.amount, n.description, wallet.CategoryExpenseCondition)
	state.TotalExpensesYTD = state.TotalExpensesYTD.Add(n.amount)
	return n.amount
}
