package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is one row of a recomputed repayment schedule.
type Period struct {
	Number             int             `json:"period"`
	FromDate           time.Time       `json:"from_date"`
	DueDate            time.Time       `json:"due_date"`
	Principal          decimal.Decimal `json:"principal"`
	Interest           decimal.Decimal `json:"interest"`
	Fees               decimal.Decimal `json:"fees"`
	Penalties          decimal.Decimal `json:"penalties"`
	Total              decimal.Decimal `json:"total"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CatchUp            bool            `json:"catch_up,omitempty"`
}

func (p *Period) total() {
	p.Total = p.Principal.Add(p.Interest).Add(p.Fees).Add(p.Penalties)
}

// ScheduleData is filled by the schedule recalculation; only FuturePeriods is written.
type ScheduleData struct {
	LoanID        int64     `json:"loan_id"`
	BusinessDate  time.Time `json:"business_date"`
	FuturePeriods []Period  `json:"future_periods"`
}

type Amounts struct {
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Fees      decimal.Decimal `json:"fees"`
	Penalties decimal.Decimal `json:"penalties"`
}

func (a Amounts) Total() decimal.Decimal {
	return a.Principal.Add(a.Interest).Add(a.Fees).Add(a.Penalties)
}

func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isDue reports whether the installment falls due on or before the date.
func (i Installment) isDue(on time.Time) bool { return !DateOnly(i.DueDate).After(on) }

// RecalculationSkipReason returns why the future schedule must not be
// recomputed, or "" when it should be.
func (l *Loan) RecalculationSkipReason() string {
	switch {
	case !l.InterestRecalculationEnabled:
		return "interest recalculation disabled"
	case l.IsNPA:
		return "loan is non-performing"
	case l.ChargedOff:
		return "loan is charged off"
	case l.Status != StatusActive:
		return "loan is not active"
	case !interestFirstProcessors[l.ProcessorCode]:
		return "transaction processor is not interest-first"
	case l.MultiDisbursement && l.PrincipalRepaid.Add(l.PrincipalWrittenOff).GreaterThanOrEqual(l.PrincipalDisbursed):
		return "disbursed principal already settled"
	}
	return ""
}

// OverduePrincipal sums the outstanding principal of unpaid installments due on or before the date.
func (l *Loan) OverduePrincipal(on time.Time) decimal.Decimal {
	on = DateOnly(on)
	total := decimal.Zero
	for _, in := range l.Installments {
		if in.Completed || !in.isDue(on) {
			continue
		}
		total = total.Add(in.PrincipalOutstanding())
	}
	return total
}

// PrepaymentAmounts is what the client has to pay on the date to be up to date.
func (l *Loan) PrepaymentAmounts(on time.Time) Amounts {
	on = DateOnly(on)
	a := Amounts{Principal: decimal.Zero, Interest: decimal.Zero, Fees: decimal.Zero, Penalties: decimal.Zero}
	for _, in := range l.Installments {
		if in.Completed || !in.isDue(on) {
			continue
		}
		a.Principal = a.Principal.Add(in.PrincipalOutstanding())
		a.Interest = a.Interest.Add(in.InterestOutstanding())
		a.Fees = a.Fees.Add(in.FeeOutstanding())
		a.Penalties = a.Penalties.Add(in.PenaltyOutstanding())
	}
	return a
}

func (l *Loan) OutstandingPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, in := range l.Installments {
		if in.Completed {
			continue
		}
		total = total.Add(in.PrincipalOutstanding())
	}
	return total
}

// recalculationAnchor is the due date of the last installment before the date,
// falling back to the disbursement date.
func (l *Loan) recalculationAnchor(on time.Time) time.Time {
	var anchor time.Time
	for _, in := range l.Installments {
		due := DateOnly(in.DueDate)
		if due.Before(on) && due.After(anchor) {
			anchor = due
		}
	}
	if anchor.IsZero() && l.DisbursedOn != nil {
		anchor = DateOnly(*l.DisbursedOn)
	}
	if anchor.IsZero() && len(l.Installments) > 0 {
		anchor = DateOnly(l.Installments[0].FromDate)
	}
	return anchor
}

// RegenerateFuture re-amortizes the principal that is not yet due over the
// unpaid installments falling due after the date, keeping their due dates.
// An installment due exactly on the date is fully covered by PrepaymentAmounts
// and regenerates empty.
func (l *Loan) RegenerateFuture(on time.Time) []Period {
	on = DateOnly(on)

	var future []Installment
	remaining := 0
	for _, in := range l.Installments {
		if in.Completed || DateOnly(in.DueDate).Before(on) {
			continue
		}
		future = append(future, in)
		if !in.isDue(on) {
			remaining++
		}
	}
	periods := make([]Period, 0, len(future))
	if len(future) == 0 {
		return periods
	}

	balance := l.OutstandingPrincipal().Sub(l.OverduePrincipal(on))
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	rate := l.AnnualNominalInterestRate.Div(decimal.NewFromInt(1200))
	payment := equalPayment(balance, rate, remaining)

	from := l.recalculationAnchor(on)
	left := remaining
	for _, in := range future {
		p := Period{
			Number:    in.Number,
			FromDate:  from,
			DueDate:   DateOnly(in.DueDate),
			Principal: decimal.Zero,
			Interest:  decimal.Zero,
			Fees:      decimal.Zero,
			Penalties: decimal.Zero,
		}
		if !in.isDue(on) {
			left--
			p.Interest = balance.Mul(rate).Round(2)
			p.Principal = payment.Sub(p.Interest)
			if left == 0 || p.Principal.GreaterThan(balance) {
				p.Principal = balance
			}
			if p.Principal.IsNegative() {
				p.Principal = decimal.Zero
			}
			balance = balance.Sub(p.Principal)
			p.Fees = in.FeeOutstanding()
			p.Penalties = in.PenaltyOutstanding()
		}
		p.OutstandingBalance = balance
		p.total()
		periods = append(periods, p)
		from = p.DueDate
	}
	return periods
}

// FutureSchedule regenerates the future periods and folds every amount due on
// or before the date into the first of them.
func (l *Loan) FutureSchedule(on time.Time) []Period {
	on = DateOnly(on)
	periods := l.RegenerateFuture(on)
	due := l.PrepaymentAmounts(on)
	if len(periods) == 0 || !due.Total().IsPositive() {
		return periods
	}
	first := &periods[0]
	first.Principal = first.Principal.Add(due.Principal)
	first.Interest = first.Interest.Add(due.Interest)
	first.Fees = first.Fees.Add(due.Fees)
	first.Penalties = first.Penalties.Add(due.Penalties)
	first.CatchUp = true
	first.total()
	return periods
}

// equalPayment is the fixed installment P*r*(1+r)^n / ((1+r)^n - 1).
func equalPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(rate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1))).Round(2)
}
