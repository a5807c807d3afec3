package mysql

import (
	"context"

	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Prequalifications: &PrequalificationRepository{db: tx},
		Products:          &ProductRepository{db: tx},
		Checklist:         &ChecklistRepository{db: tx},
		Loans:             &LoanRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinGroupTx(ctx context.Context, prequalificationID int64, fn func(r uow.Repos, g *prequalification.Group) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the group row up-front so concurrent runs serialize
		g, err := r.Prequalifications.GetByIDForUpdate(ctx, prequalificationID)
		if err != nil {
			return err
		}
		return fn(r, g)
	})
}
