package policy

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fineract-prequalification/internal/domain/loan"
)

type Area int

const (
	AreaUnknown Area = iota
	AreaRural
	AreaUrban
)

// ParseArea maps an area code-value label to an Area.
func ParseArea(label string) Area {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "rural":
		return AreaRural
	case "urbana", "urbano", "urban":
		return AreaUrban
	}
	return AreaUnknown
}

// Subject is the data a rule is evaluated against: a single member, or a whole
// group when the category is a group-level one.
type Subject struct {
	ProductID       int64
	RequestedAmount decimal.Decimal
	Recredit        bool
	Area            Area
	BusinessDate    time.Time

	// member data
	DateOfBirth         time.Time
	Gender              string
	PriorCycles         int
	LoanStatuses        []loan.Status
	LastClosedPrincipal *decimal.Decimal

	// group data
	MemberCount int
}
