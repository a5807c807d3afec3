package mysql

import (
	"context"
	"database/sql"
	"errors"

	loanDomain "fineract-prequalification/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("installment ASC") }).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

const (
	loanCycleSQL = `SELECT COALESCE(MAX(loan_counter), 0) FROM m_loan WHERE client_id = ?`

	loanStatusesSQL = `SELECT loan_status_id FROM m_loan WHERE client_id = ? ORDER BY id`

	lastClosedPrincipalSQL = `
SELECT principal_amount FROM m_loan
WHERE client_id = ? AND loan_status_id IN ?
ORDER BY closedon_date DESC, id DESC
LIMIT 1`
)

func (r *LoanRepository) History(ctx context.Context, clientID int64) (*loanDomain.History, error) {
	db := r.db.WithContext(ctx)
	h := &loanDomain.History{}

	if err := db.Raw(loanCycleSQL, clientID).Row().Scan(&h.PriorCycles); err != nil {
		return nil, err
	}

	rows, err := db.Raw(loanStatusesSQL, clientID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var st int
		if err := rows.Scan(&st); err != nil {
			return nil, err
		}
		h.Statuses = append(h.Statuses, loanDomain.Status(st))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	closed := []int{int(loanDomain.StatusClosed), int(loanDomain.StatusOverpaid)}
	var principal decimal.NullDecimal
	err = db.Raw(lastClosedPrincipalSQL, clientID, closed).Row().Scan(&principal)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, err
	case principal.Valid:
		h.LastClosedPrincipal = &principal.Decimal
	}
	return h, nil
}
