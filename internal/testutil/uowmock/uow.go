package uowmock

import (
	"context"
	"errors"

	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinGroupTxFn func(ctx context.Context, prequalificationID int64, fn func(r uow.Repos, g *prequalification.Group) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinGroupTx(fn func(context.Context, int64, func(uow.Repos, *prequalification.Group) error) error) *UoW {
	m.WithinGroupTxFn = fn
	return m
}

// Passthrough runs every transaction body directly against repos, handing the
// group from GetByIDForUpdate to group transactions.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinGroupTxFn: func(ctx context.Context, id int64, fn func(uow.Repos, *prequalification.Group) error) error {
			g, err := repos.Prequalifications.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, g)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinGroupTx(ctx context.Context, prequalificationID int64, fn func(r uow.Repos, g *prequalification.Group) error) error {
	if m.WithinGroupTxFn != nil {
		return m.WithinGroupTxFn(ctx, prequalificationID, fn)
	}
	return errUnimplemented
}
