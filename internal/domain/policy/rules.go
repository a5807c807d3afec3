package policy

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"fineract-prequalification/internal/domain/loan"
)

// Rule classifies a subject for one category.
type Rule func(p Policy, s Subject) Verdict

var hundred = decimal.NewFromInt(100)

// Loans in these statuses never count as the "other" loan of a returning client.
var standardStatuses = []loan.Status{
	loan.StatusSubmitted,
	loan.StatusApproved,
	loan.StatusActive,
	loan.StatusTransferInProgress,
	loan.StatusTransferOnHold,
	loan.StatusWithdrawn,
	loan.StatusRejected,
	loan.StatusWrittenOff,
	loan.StatusRescheduled,
}

func newClient(_ Policy, s Subject) Verdict {
	if s.PriorCycles == 0 {
		return Green
	}
	other := 0
	for _, st := range s.LoanStatuses {
		if st.IsClosed() {
			return Green
		}
		if !slices.Contains(standardStatuses, st) {
			other++
		}
	}
	if other == 1 {
		return Green
	}
	return Red
}

func recurringCustomer(p Policy, s Subject) Verdict {
	switch {
	case slices.Contains(p.RecurringProducts, s.ProductID):
		if s.PriorCycles > 0 {
			return Green
		}
	case slices.Contains(p.RecurringLongProducts, s.ProductID):
		if s.PriorCycles > p.RecurringLongMinCycles {
			return Green
		}
	}
	return Red
}

// increasePercent is the growth of the requested amount over the principal of
// the most recently closed loan. Without a prior principal it is 100.
func increasePercent(s Subject) decimal.Decimal {
	if s.LastClosedPrincipal == nil || s.LastClosedPrincipal.IsZero() {
		return hundred
	}
	prev := *s.LastClosedPrincipal
	return s.RequestedAmount.Sub(prev).Div(prev).Mul(hundred)
}

func increasePercentage(p Policy, s Subject) Verdict {
	pct := increasePercent(s)
	switch {
	case slices.Contains(p.IncreaseBandProducts, s.ProductID):
		// branch order matters: 500 matches both the yellow and red bands
		switch {
		case pct.Equal(p.IncreaseGreenPercent):
			return Green
		case pct.GreaterThanOrEqual(p.IncreaseYellowFrom) && pct.LessThanOrEqual(p.IncreaseYellowTo):
			return Yellow
		case pct.GreaterThanOrEqual(p.IncreaseRedFrom):
			return Red
		}
	case slices.Contains(p.IncreaseCapProducts, s.ProductID):
		if pct.LessThanOrEqual(p.IncreaseCapPercent) {
			return Green
		}
		return Orange
	}
	return Red
}

func clientAge(p Policy, s Subject) Verdict {
	age := s.BusinessDate.Year() - s.DateOfBirth.Year()
	if age >= p.AgeMin && age <= p.AgeMax {
		return Green
	}
	return Red
}

// membersAccordingToPolicy keeps the historical polarity: above the maximum is
// green, below the minimum orange, and inside the range red.
func membersAccordingToPolicy(p Policy, s Subject) Verdict {
	r := p.memberRange(s)
	switch {
	case s.MemberCount > r.Max:
		return Green
	case s.MemberCount < r.Min:
		return Orange
	}
	return Red
}

// minimumAndMaximumAmount is only green when min > requested > max, which
// cannot happen with a well-formed range. Kept as is.
func minimumAndMaximumAmount(p Policy, s Subject) Verdict {
	r := p.amountRange(s)
	if r.Min.GreaterThan(s.RequestedAmount) && r.Max.LessThan(s.RequestedAmount) {
		return Green
	}
	return Red
}

func requestedAmount(p Policy, s Subject) Verdict {
	r := p.RequestedAmount
	if s.Recredit {
		r = p.RecreditRequestedAmount
	}
	if r.contains(s.RequestedAmount) {
		return Green
	}
	return Red
}

func gender(p Policy, s Subject) Verdict {
	if strings.EqualFold(strings.TrimSpace(s.Gender), p.FemaleGenderLabel) {
		return Green
	}
	return Orange
}

func alwaysGreen(Policy, Subject) Verdict { return Green }
