package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// SalaryNode credits 1/12th of an annual salary once per calendar month,
// per spec.md §4.E.
type SalaryNode struct {
	id           string
	deps         []string
	annualSalary money.Amount
	paymentDay   int
	gate         monthlyGate
}

// NewSalaryNode constructs a SalaryNode paying on paymentDay each month.
// paymentDay defaults to 1 if zero is passed.
func NewSalaryNode(id string, annualSalary money.Amount, paymentDay int, deps ...string) *SalaryNode {
	if paymentDay == 0 {
		paymentDay = 1
	}
	return &SalaryNode{id: id, deps: deps, annualSalary: annualSalary, paymentDay: paymentDay}
}

func (n *SalaryNode) ID() string             { return n.id }
func (n *SalaryNode) Dependencies() []string { return n.deps }

func (n *SalaryNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if !n.gate.due(ctx.CurrentDate, n.paymentDay) {
		return money.Zero
	}

	monthlySalary := n.annualSalary.Div(money.New(12))
	state.Credit(monthlySalary, "monthly salary", wallet.CategoryIncomeSalary)
	state.TotalIncomeYTD = state.TotalIncomeYTD.Add(monthlySalary)
	return monthlySalary
}
