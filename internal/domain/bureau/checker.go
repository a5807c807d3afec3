package bureau

import (
	"context"

	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
)

// Checker classifies a prequalification member's credit standing.
type Checker interface {
	Classify(ctx context.Context, m prequalification.MemberView) (policy.Verdict, error)
}
