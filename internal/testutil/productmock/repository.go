package productmock

import (
	"context"

	domain "fineract-prequalification/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.LoanProduct, error)
}

// GetByID defaults to a product carrying the requested id.
func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.LoanProduct, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return &domain.LoanProduct{ID: id}, nil
}
