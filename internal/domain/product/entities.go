package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("loan product not found")

// Table: m_product_loan
type LoanProduct struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:100;not null"`
	ShortName string `gorm:"column:short_name;size:4"`
}

func (LoanProduct) TableName() string { return "m_product_loan" }

type Repository interface {
	GetByID(ctx context.Context, id int64) (*LoanProduct, error)
}
