package uow

import (
	"context"

	"fineract-prequalification/internal/domain/checklist"
	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/product"
)

// Repos are bound to the same transaction.
type Repos struct {
	Prequalifications prequalification.Repository
	Products          product.Repository
	Checklist         checklist.Repository
	Loans             loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the prequalification group first, then pass it in
	WithinGroupTx(ctx context.Context, prequalificationID int64, fn func(r Repos, g *prequalification.Group) error) error
}
