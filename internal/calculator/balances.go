// Package calculator derives balance information from the payment ledger.
// Everything here is a pure function of ledger + settings; no stored state.
package calculator

import "github.com/azamanzizi-droid/ku2cash/internal/models"

// MemberBalance represents the derived payment position for one member.
type MemberBalance struct {
	MemberID   int64   `json:"memberId"`
	MemberName string  `json:"memberName"`
	TotalPaid  float64 `json:"totalPaid"`
	// Balance is target minus total paid. Negative means overpayment;
	// it is deliberately not clamped.
	Balance float64 `json:"balance"`
}

// Summary aggregates the whole ledger for the collection dashboard.
type Summary struct {
	GrandTotal float64 `json:"grandTotal"`
	Count      int     `json:"count"`
}

// TotalFor sums payment amounts for one member.
func TotalFor(payments []models.Payment, memberID int64) float64 {
	var total float64
	for _, p := range payments {
		if p.MemberID == memberID {
			total += p.Amount
		}
	}
	return total
}

// GrandTotal sums all payment amounts across the ledger.
func GrandTotal(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// Balance returns target minus the member's total paid.
func Balance(payments []models.Payment, memberID int64, target float64) float64 {
	return target - TotalFor(payments, memberID)
}

// Summarize aggregates the ledger into grand total and payment count.
func Summarize(payments []models.Payment) Summary {
	return Summary{
		GrandTotal: GrandTotal(payments),
		Count:      len(payments),
	}
}

// MemberBalances computes the per-member payment position for every member
// in registry order.
func MemberBalances(members []models.Member, payments []models.Payment, target float64) []MemberBalance {
	// One pass over the ledger instead of one per member.
	totals := make(map[int64]float64, len(members))
	for _, p := range payments {
		totals[p.MemberID] += p.Amount
	}

	balances := make([]MemberBalance, len(members))
	for i, m := range members {
		paid := totals[m.ID]
		balances[i] = MemberBalance{
			MemberID:   m.ID,
			MemberName: m.Name,
			TotalPaid:  paid,
			Balance:    target - paid,
		}
	}
	return balances
}
