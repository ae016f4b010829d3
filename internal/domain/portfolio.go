package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is a dividend distribution interval expressed in calendar months.
type Frequency int

const (
	Monthly   Frequency = 1
	Quarterly Frequency = 3
	Annual    Frequency = 12
)

// Months returns the interval length in calendar months.
func (f Frequency) Months() int { return int(f) }

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	default:
		return "annual"
	}
}

// ParseFrequency maps a frequency label to its interval. Unknown labels fall
// back to annual, matching the front end's selectbox default.
func ParseFrequency(s string) Frequency {
	switch s {
	case "monthly":
		return Monthly
	case "quarterly":
		return Quarterly
	default:
		return Annual
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = ParseFrequency(s)
	return nil
}

// Holding is a user-defined investment position generating recurring dividend
// income. Read-only during projection.
type Holding struct {
	Name      string          `json:"name"`
	Invested  decimal.Decimal `json:"invested"`
	Shares    decimal.Decimal `json:"shares"`
	Payout    decimal.Decimal `json:"payout"` // amount per share per distribution
	Frequency Frequency       `json:"frequency"`
	Start     time.Time       `json:"start"` // first distribution date
}

// EventKind classifies a one-off cash event.
type EventKind string

const (
	Income  EventKind = "income"
	Expense EventKind = "expense"
)

// CashEvent is a one-time income or expense on a specific date. Amount is a
// positive magnitude; the sign is applied at processing time.
type CashEvent struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Kind   EventKind       `json:"kind"`
	Date   time.Time       `json:"date"`
}

// Signed returns the event amount ceiled to a whole currency unit, negated
// for expenses.
func (e CashEvent) Signed() decimal.Decimal {
	amount := CeilCurrency(e.Amount)
	if e.Kind == Expense {
		return amount.Neg()
	}
	return amount
}
