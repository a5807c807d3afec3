package policy

import (
	"slices"

	"github.com/shopspring/decimal"
)

type AmountRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (r AmountRange) contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

type MemberRange struct {
	Min int
	Max int
}

// Policy is the threshold table every rule reads from. It is built once at
// startup and never mutated afterwards.
type Policy struct {
	RecurringProducts       []int64
	RecurringLongProducts   []int64
	RecurringLongMinCycles  int
	IncreaseBandProducts    []int64
	IncreaseCapProducts     []int64
	IncreaseGreenPercent    decimal.Decimal
	IncreaseYellowFrom      decimal.Decimal
	IncreaseYellowTo        decimal.Decimal
	IncreaseRedFrom         decimal.Decimal
	IncreaseCapPercent      decimal.Decimal
	AgeMin                  int
	AgeMax                  int
	Members                 MemberRange
	RecreditUrbanMembers    MemberRange
	RecreditRuralMembers    MemberRange
	Amount                  AmountRange
	RecreditRuralAmount     AmountRange
	RecreditUrbanAmount     AmountRange
	RequestedAmount         AmountRange
	RecreditRequestedAmount AmountRange
	FemaleGenderLabel       string
}

func Default() Policy {
	return Policy{
		RecurringProducts:       []int64{2, 8, 9},
		RecurringLongProducts:   []int64{4, 5},
		RecurringLongMinCycles:  3,
		IncreaseBandProducts:    []int64{2, 9},
		IncreaseCapProducts:     []int64{4, 5},
		IncreaseGreenPercent:    decimal.NewFromInt(200),
		IncreaseYellowFrom:      decimal.NewFromInt(201),
		IncreaseYellowTo:        decimal.NewFromInt(500),
		IncreaseRedFrom:         decimal.NewFromInt(500),
		IncreaseCapPercent:      decimal.NewFromInt(60),
		AgeMin:                  20,
		AgeMax:                  60,
		Members:                 MemberRange{Min: 4, Max: 10},
		RecreditUrbanMembers:    MemberRange{Min: 4, Max: 15},
		RecreditRuralMembers:    MemberRange{Min: 3, Max: 10},
		Amount:                  amountRange(1000, 20000),
		RecreditRuralAmount:     amountRange(5000, 15000),
		RecreditUrbanAmount:     amountRange(6000, 20000),
		RequestedAmount:         amountRange(0, 3000),
		RecreditRequestedAmount: amountRange(1000, 200000),
		FemaleGenderLabel:       "Mujer",
	}
}

func amountRange(min, max int64) AmountRange {
	return AmountRange{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max)}
}

func (p Policy) clone() Policy {
	p.RecurringProducts = slices.Clone(p.RecurringProducts)
	p.RecurringLongProducts = slices.Clone(p.RecurringLongProducts)
	p.IncreaseBandProducts = slices.Clone(p.IncreaseBandProducts)
	p.IncreaseCapProducts = slices.Clone(p.IncreaseCapProducts)
	return p
}

func (p Policy) memberRange(s Subject) MemberRange {
	if !s.Recredit {
		return p.Members
	}
	if s.Area == AreaRural {
		return p.RecreditRuralMembers
	}
	return p.RecreditUrbanMembers
}

func (p Policy) amountRange(s Subject) AmountRange {
	if !s.Recredit {
		return p.Amount
	}
	if s.Area == AreaRural {
		return p.RecreditRuralAmount
	}
	return p.RecreditUrbanAmount
}
