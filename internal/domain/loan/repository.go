package loan

import "context"

type Repository interface {
	// GetByID loads the loan with its installments ordered by installment number.
	GetByID(ctx context.Context, id int64) (*Loan, error)

	// History aggregates the client's loan ledger.
	History(ctx context.Context, clientID int64) (*History, error)
}
