package checklistmock

import (
	"context"

	domain "fineract-prequalification/internal/domain/checklist"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock; unset reads return nothing and unset writes succeed.
type Repo struct {
	CategoriesForProductFn func(ctx context.Context, productID int64, vt domain.ValidationType) ([]domain.Category, error)
	DeleteResultsFn        func(ctx context.Context, prequalificationID int64) error
	CreateResultsFn        func(ctx context.Context, rs []domain.Result) error
	ListResultsFn          func(ctx context.Context, prequalificationID int64) ([]domain.ResultView, error)
}

func (m *Repo) CategoriesForProduct(ctx context.Context, productID int64, vt domain.ValidationType) ([]domain.Category, error) {
	if m.CategoriesForProductFn != nil {
		return m.CategoriesForProductFn(ctx, productID, vt)
	}
	return nil, nil
}

func (m *Repo) DeleteResults(ctx context.Context, prequalificationID int64) error {
	if m.DeleteResultsFn != nil {
		return m.DeleteResultsFn(ctx, prequalificationID)
	}
	return nil
}

func (m *Repo) CreateResults(ctx context.Context, rs []domain.Result) error {
	if m.CreateResultsFn != nil {
		return m.CreateResultsFn(ctx, rs)
	}
	return nil
}

func (m *Repo) ListResults(ctx context.Context, prequalificationID int64) ([]domain.ResultView, error) {
	if m.ListResultsFn != nil {
		return m.ListResultsFn(ctx, prequalificationID)
	}
	return nil, nil
}
