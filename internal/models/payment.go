package models

// PaymentDateLayout is the calendar format payments are recorded with
// (DD/MM/YYYY, the ms-MY locale convention).
const PaymentDateLayout = "02/01/2006"

// Payment represents one recorded contribution. The ledger is append-only:
// payments are never updated or removed, except that MemberName is rewritten
// when the referenced member is renamed.
type Payment struct {
	// ID is the unique identifier, derived from the creation timestamp
	// (Unix milliseconds, bumped on collision).
	ID int64 `json:"id"`

	// MemberID references the paying Member.
	MemberID int64 `json:"memberId"`

	// MemberName is a cached projection of the member's name, kept in
	// sync on rename.
	MemberName string `json:"memberName"`

	// Amount is the contribution amount. Always positive.
	Amount float64 `json:"amount"`

	// Date is the calendar date of the payment in PaymentDateLayout.
	Date string `json:"date"`
}
