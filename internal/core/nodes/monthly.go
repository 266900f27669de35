// Package nodes implements the thirteen financial component nodes named in
// spec.md §4.E, plus one supplemental node (RecurringTransferNode,
// spec.md SPEC_FULL §4.E). Each node is a small struct carrying its own
// configuration and per-instance bookkeeping, never package-level state,
// per spec.md §9's polymorphic-node design note.
package nodes

import "time"

// monthlyGate tracks "at most once per calendar month" bookkeeping shared
// by SalaryNode, FixedExpenseNode, and DebtPaymentNode (spec.md §4.E,
// property 6 "monthly-once").
type monthlyGate struct {
	lastYear  int
	lastMonth time.Month
	fired     bool
}

// due reports whether today is the configured payment day and this
// calendar month hasn't already fired, and marks it fired if so.
func (g *monthlyGate) due(today time.Time, paymentDay int) bool {
	if today.Day() != paymentDay {
		return false
	}
	if g.fired && g.lastYear == today.Year() && g.lastMonth == today.Month() {
		return false
	}
	g.fired = true
	g.lastYear = today.Year()
	g.lastMonth = today.Month()
	return true
}
