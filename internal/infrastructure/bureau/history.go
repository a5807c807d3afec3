package bureau

import (
	"context"
	"fmt"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
)

// HistoryChecker classifies members from the institution's own loan ledger.
type HistoryChecker struct {
	loans loan.Repository
}

func NewHistoryChecker(loans loan.Repository) *HistoryChecker {
	return &HistoryChecker{loans: loans}
}

func (c *HistoryChecker) Classify(ctx context.Context, m prequalification.MemberView) (policy.Verdict, error) {
	if m.ClientID == nil {
		return policy.Green, nil
	}
	h, err := c.loans.History(ctx, *m.ClientID)
	if err != nil {
		return "", fmt.Errorf("bureau history of client %d: %w", *m.ClientID, err)
	}
	switch {
	case h.Has(loan.StatusWrittenOff):
		return policy.Red, nil
	case h.Has(loan.StatusActive):
		return policy.Yellow, nil
	}
	return policy.Green, nil
}
