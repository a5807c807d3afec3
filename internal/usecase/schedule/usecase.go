package schedule

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/infrastructure/metrics"
)

type Usecase struct {
	loans loan.Repository
	log   *zap.Logger
}

func NewUsecase(loans loan.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, log: log}
}

// Recompute writes the loan's recalculated future periods into data.FuturePeriods.
// Loans that do not qualify for recalculation leave data untouched. Nothing is
// written to the database.
func (u *Usecase) Recompute(ctx context.Context, loanID int64, businessDate time.Time, data *loan.ScheduleData) error {
	if data == nil {
		return errors.New("schedule data is nil")
	}
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = loan.ErrNotFound
		}
		metrics.ScheduleRecalculationsTotal.WithLabelValues("error").Inc()
		return err
	}

	if reason := l.RecalculationSkipReason(); reason != "" {
		metrics.ScheduleRecalculationsTotal.WithLabelValues("skipped").Inc()
		u.log.Debug("schedule recalculation skipped",
			zap.Int64("loan_id", loanID),
			zap.String("reason", reason))
		return nil
	}

	on := loan.DateOnly(businessDate)
	data.FuturePeriods = l.FutureSchedule(on)

	outcome := "recalculated"
	if len(data.FuturePeriods) > 0 && data.FuturePeriods[0].CatchUp {
		outcome = "catch_up"
	}
	metrics.ScheduleRecalculationsTotal.WithLabelValues(outcome).Inc()
	u.log.Info("future schedule recalculated",
		zap.Int64("loan_id", loanID),
		zap.Time("business_date", on),
		zap.Int("periods", len(data.FuturePeriods)),
		zap.Bool("catch_up", outcome == "catch_up"))
	return nil
}
