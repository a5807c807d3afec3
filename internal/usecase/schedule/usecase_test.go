package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/testutil/loanmock"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func activeLoan() *loan.Loan {
	disbursed := day(2025, 1, 1)
	d := decimal.NewFromInt
	return &loan.Loan{
		ID:                           5,
		Status:                       loan.StatusActive,
		InterestRecalculationEnabled: true,
		ProcessorCode:                "interest-principal-penalties-fees-order-strategy",
		AnnualNominalInterestRate:    d(12),
		DisbursedOn:                  &disbursed,
		Installments: []loan.Installment{
			{Number: 1, FromDate: day(2025, 1, 1), DueDate: day(2025, 2, 1), Principal: d(300), Interest: d(30), Completed: true, PrincipalCompleted: d(300), InterestCompleted: d(30)},
			{Number: 2, FromDate: day(2025, 2, 1), DueDate: day(2025, 3, 1), Principal: d(300), Interest: d(20)},
			{Number: 3, FromDate: day(2025, 3, 1), DueDate: day(2025, 4, 1), Principal: d(200), Interest: d(10)},
			{Number: 4, FromDate: day(2025, 4, 1), DueDate: day(2025, 5, 1), Principal: d(200), Interest: d(5)},
		},
	}
}

func TestRecompute_NoOpWhenRecalculationDisabled(t *testing.T) {
	l := activeLoan()
	l.InterestRecalculationEnabled = false
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return l, nil }}
	u := NewUsecase(repo, zaptest.NewLogger(t))

	existing := []loan.Period{{Number: 9}}
	data := &loan.ScheduleData{LoanID: 5, FuturePeriods: existing}
	require.NoError(t, u.Recompute(context.Background(), 5, day(2025, 3, 15), data))
	assert.Equal(t, existing, data.FuturePeriods)
}

func TestRecompute_NotFound(t *testing.T) {
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return nil, gorm.ErrRecordNotFound }}
	u := NewUsecase(repo, nil)

	err := u.Recompute(context.Background(), 5, day(2025, 3, 15), &loan.ScheduleData{})
	assert.ErrorIs(t, err, loan.ErrNotFound)
}

func TestRecompute_NilData(t *testing.T) {
	u := NewUsecase(&loanmock.Repo{}, nil)
	assert.Error(t, u.Recompute(context.Background(), 5, day(2025, 3, 15), nil))
}

func TestRecompute_CatchUpPeriod(t *testing.T) {
	l := activeLoan()
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return l, nil }}
	u := NewUsecase(repo, zaptest.NewLogger(t))

	data := &loan.ScheduleData{LoanID: 5}
	require.NoError(t, u.Recompute(context.Background(), 5, day(2025, 3, 15), data))

	require.Len(t, data.FuturePeriods, 2)
	first := data.FuturePeriods[0]
	assert.True(t, first.CatchUp)
	assert.Equal(t, 3, first.Number)
	assert.True(t, first.FromDate.Equal(day(2025, 3, 1)))

	// overdue principal of installment 2 is folded into the first future period
	total := decimal.Zero
	for _, p := range data.FuturePeriods {
		total = total.Add(p.Principal)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(700)), "principal total = %s", total)
	assert.True(t, first.Interest.GreaterThanOrEqual(decimal.NewFromInt(20)))
	assert.True(t, data.FuturePeriods[1].OutstandingBalance.IsZero())
	assert.False(t, data.FuturePeriods[1].CatchUp)
}
