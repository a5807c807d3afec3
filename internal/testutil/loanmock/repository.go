package loanmock

import (
	"context"

	domain "fineract-prequalification/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.Loan, error)
	HistoryFn func(ctx context.Context, clientID int64) (*domain.History, error)
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

// History defaults to an empty ledger.
func (m *Repo) History(ctx context.Context, clientID int64) (*domain.History, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, clientID)
	}
	return &domain.History{}, nil
}
