package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/domain"
	"github.com/finplan/loansim/internal/grid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Synthetic 3-period schedule with known dues.
func syntheticSchedule() []domain.AmortizationRow {
	return []domain.AmortizationRow{
		{Period: 1, Payment: dec(1100), Principal: dec(1000), Interest: dec(100), Balance: dec(2000)},
		{Period: 2, Payment: dec(1100), Principal: dec(1030), Interest: dec(70), Balance: dec(970)},
		{Period: 3, Payment: dec(1005), Principal: dec(970), Interest: dec(35), Balance: dec(0)},
	}
}

func TestAccumulateRecurrence(t *testing.T) {
	g := grid.New(date(2025, time.July, 1), 3)
	holdings := []domain.Holding{{
		Payout:    dec(5),
		Shares:    dec(100),
		Frequency: domain.Monthly,
		Start:     date(2025, time.August, 1), // lands on periods 2 and 3
	}}
	events := []domain.CashEvent{{
		Label:  "insurance",
		Amount: dec(200),
		Kind:   domain.Expense,
		Date:   date(2025, time.September, 1), // period 3
	}}

	res := Accumulate(syntheticSchedule(), holdings, events, dec(10000), g)

	if len(res.Rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(res.Rows))
	}

	// fund(1) = 10000 - 0 - 1000 - 100 = 8900
	if got := res.Rows[0].Fund; !got.Equal(dec(8900)) {
		t.Errorf("fund(1) = %s, want 8900", got)
	}
	// fund(2) = 8900 - 1030 - 70 + 500 = 8300
	if got := res.Rows[1].Fund; !got.Equal(dec(8300)) {
		t.Errorf("fund(2) = %s, want 8300", got)
	}
	// fund(3) = 8300 - 970 - 35 + 500 - 200 = 7595
	if got := res.Rows[2].Fund; !got.Equal(dec(7595)) {
		t.Errorf("fund(3) = %s, want 7595", got)
	}

	// Row-level recurrence across the whole ledger.
	prev := dec(10000).Sub(res.TotalInvested)
	for _, r := range res.Rows {
		want := prev.Sub(r.Principal).Sub(r.Interest).Add(r.Dividend).Add(r.Adjustment)
		if !r.Fund.Equal(want) {
			t.Errorf("period %d: fund = %s, want %s", r.Period, r.Fund, want)
		}
		prev = r.Fund
	}
}

func TestAccumulateSeedSubtractsInvested(t *testing.T) {
	g := grid.New(date(2025, time.July, 1), 3)
	holdings := []domain.Holding{{
		Invested:  dec(4000),
		Payout:    dec(1),
		Shares:    dec(1),
		Frequency: domain.Annual,
		Start:     date(2030, time.January, 1), // beyond horizon, never pays
	}}

	res := Accumulate(syntheticSchedule(), holdings, nil, dec(10000), g)

	if !res.TotalInvested.Equal(dec(4000)) {
		t.Errorf("TotalInvested = %s, want 4000", res.TotalInvested)
	}
	// fund(1) = 10000 - 4000 - 1000 - 100 = 4900
	if got := res.Rows[0].Fund; !got.Equal(dec(4900)) {
		t.Errorf("fund(1) = %s, want 4900", got)
	}
}

func TestAccumulateEventPlacement(t *testing.T) {
	g := grid.New(date(2025, time.July, 1), 3)
	events := []domain.CashEvent{
		{Label: "bonus", Amount: dec(1000), Kind: domain.Income, Date: date(2025, time.August, 1)},
		{Label: "repair", Amount: dec(300), Kind: domain.Expense, Date: date(2025, time.August, 1)},
		{Label: "off-grid", Amount: dec(999), Kind: domain.Income, Date: date(2025, time.August, 15)},
	}

	res := Accumulate(syntheticSchedule(), nil, events, dec(0), g)

	// Period 2 adjustment: +1000 - 300; the off-grid event is dropped.
	if got := res.Rows[1].Adjustment; !got.Equal(dec(700)) {
		t.Errorf("adjustment(2) = %s, want 700", got)
	}
	if res.SkippedEvents != 1 {
		t.Errorf("SkippedEvents = %d, want 1", res.SkippedEvents)
	}
}

func TestAccumulateEmptySchedule(t *testing.T) {
	g := grid.New(date(2025, time.July, 1), 0)
	res := Accumulate(nil, nil, nil, dec(10000), g)
	if len(res.Rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(res.Rows))
	}
}

func TestAccumulateIdempotent(t *testing.T) {
	g := grid.New(date(2025, time.July, 1), 3)
	holdings := []domain.Holding{{
		Invested:  dec(1000),
		Payout:    dec(2),
		Shares:    dec(50),
		Frequency: domain.Monthly,
		Start:     date(2025, time.July, 1),
	}}
	events := []domain.CashEvent{
		{Label: "gift", Amount: dec(100), Kind: domain.Income, Date: date(2025, time.September, 1)},
	}

	a := Accumulate(syntheticSchedule(), holdings, events, dec(10000), g)
	b := Accumulate(syntheticSchedule(), holdings, events, dec(10000), g)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated accumulation differs:\n%+v\n%+v", a, b)
	}
}
