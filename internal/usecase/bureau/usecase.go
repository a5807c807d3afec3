package bureau

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "fineract-prequalification/internal/domain/bureau"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/uow"
	"fineract-prequalification/internal/infrastructure/metrics"
)

type Usecase struct {
	uow     uow.UnitOfWork
	checker domain.Checker
	log     *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, checker domain.Checker, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: tx, checker: checker, log: log}
}

type Summary struct {
	PrequalificationID int64                    `json:"prequalification_id"`
	Status             string                   `json:"status"`
	Members            map[int64]policy.Verdict `json:"members"`
}

// Validate classifies every member, stores the classification and moves the
// group to BUREAU_CHECKED.
func (u *Usecase) Validate(ctx context.Context, prequalificationID int64, actor string) (*Summary, error) {
	var out *Summary
	err := u.uow.WithinGroupTx(ctx, prequalificationID, func(r uow.Repos, g *prequalification.Group) error {
		views, err := r.Prequalifications.MemberViews(ctx, g.ID)
		if err != nil {
			return err
		}
		out = &Summary{PrequalificationID: g.ID, Members: make(map[int64]policy.Verdict, len(views))}
		for _, v := range views {
			verdict, err := u.checker.Classify(ctx, v)
			if err != nil {
				return err
			}
			if err := r.Prequalifications.SaveBureauClassification(ctx, v.MemberID, string(verdict)); err != nil {
				return err
			}
			out.Members[v.MemberID] = verdict
		}

		entry := g.Transition(prequalification.StatusBureauChecked, actor, "bureau validation")
		if err := r.Prequalifications.SaveStatus(ctx, g); err != nil {
			return err
		}
		if err := r.Prequalifications.AppendStatusLog(ctx, entry); err != nil {
			return err
		}
		out.Status = g.Status.String()
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = prequalification.ErrNotFound
		}
		u.log.Warn("bureau validation failed",
			zap.Int64("prequalification_id", prequalificationID),
			zap.Error(err))
		return nil, err
	}

	for _, v := range out.Members {
		metrics.BureauChecksTotal.WithLabelValues(string(v)).Inc()
	}
	u.log.Info("bureau validation done",
		zap.Int64("prequalification_id", prequalificationID),
		zap.String("actor", actor),
		zap.Int("members", len(out.Members)))
	return out, nil
}
