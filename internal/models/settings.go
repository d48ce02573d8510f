package models

import "time"

// StartDateLayout is the format Settings.StartDate is stored in.
const StartDateLayout = "2006-01-02"

// Default configuration values used when no settings snapshot exists.
const (
	DefaultPaymentTarget  = 2500
	DefaultPaymentPerTurn = 50
)

// Settings holds the three configuration scalars that parameterize balance
// calculation and payout date projection. It is replaced wholesale on save,
// never patched field by field.
type Settings struct {
	// TotalPaymentTarget is the amount each member is expected to pay in
	// total over the whole rotation.
	TotalPaymentTarget float64 `json:"totalPaymentTarget"`

	// StartDate is the first payout date, stored as YYYY-MM-DD.
	StartDate string `json:"startDate"`

	// PaymentPerTurn is the expected contribution per turn.
	PaymentPerTurn float64 `json:"paymentPerTurn"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings(now time.Time) Settings {
	return Settings{
		TotalPaymentTarget: DefaultPaymentTarget,
		StartDate:          now.Format(StartDateLayout),
		PaymentPerTurn:     DefaultPaymentPerTurn,
	}
}

// ParseStartDate parses StartDate. Callers that cannot handle a malformed
// date fall back to the zero time or today, depending on context.
func (s Settings) ParseStartDate() (time.Time, error) {
	return time.Parse(StartDateLayout, s.StartDate)
}
