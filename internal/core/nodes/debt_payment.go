package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// DebtPaymentNode walks state.Debts once per month, splitting each payment
// into interest and principal the way the teacher's debt_strategy engine's
// SimulateStrategy does its interest/principal split loop. No partial
// payments: a debt whose remaining principal is below its monthly payment
// is skipped and counted as missed rather than settled early.
type DebtPaymentNode struct {
	id         string
	deps       []string
	paymentDay int
	gate       monthlyGate
}

// NewDebtPaymentNode constructs a DebtPaymentNode paying on paymentDay.
func NewDebtPaymentNode(id string, paymentDay int, deps ...string) *DebtPaymentNode {
	if paymentDay == 0 {
		paymentDay = 1
	}
	return &DebtPaymentNode{id: id, deps: deps, paymentDay: paymentDay}
}

func (n *DebtPaymentNode) ID() string             { return n.id }
func (n *DebtPaymentNode) Dependencies() []string { return n.deps }

func (n *DebtPaymentNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	if !n.gate.due(ctx.CurrentDate, n.paymentDay) {
		return money.Zero
	}

	total := money.Zero
	twelve := money.New(12)

	for i := range state.Debts {
		debt := &state.Debts[i]

		if debt.Principal.LessThan(debt.MonthlyPayment) {
			debt.MissedPayments++
			continue
		}

		interest := debt.Principal.Mul(debt.InterestRate).Div(twelve)
		principalPayment := debt.MonthlyPayment.Sub(interest)

		state.Debit(debt.MonthlyPayment, "debt payment: "+debt.Name, wallet.CategoryExpenseDebt)
		state.TotalExpensesYTD = state.TotalExpensesYTD.Add(debt.MonthlyPayment)

		debt.Principal = money.Max(money.Zero, debt.Principal.Sub(principalPayment))

		total = total.Add(debt.MonthlyPayment)
	}

	return total
}
