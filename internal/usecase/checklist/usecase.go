package checklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "fineract-prequalification/internal/domain/checklist"
	"fineract-prequalification/internal/domain/codes"
	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/product"
	"fineract-prequalification/internal/domain/uow"
	"fineract-prequalification/internal/infrastructure/metrics"
)

var errNoUnitOfWork = errors.New("checklist: unit of work not configured")

type Usecase struct {
	uow       uow.UnitOfWork
	results   domain.Repository
	evaluator *policy.Evaluator
	codes     *codes.Registry
	log       *zap.Logger
	now       func() time.Time
}

// NewUsecase: results serves the read side outside of any transaction.
func NewUsecase(tx uow.UnitOfWork, results domain.Repository, ev *policy.Evaluator, reg *codes.Registry, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		uow:       tx,
		results:   results,
		evaluator: ev,
		codes:     reg,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run regenerates every checklist result of a prequalification and moves it to
// HARD_POLICY_CHECKED, all in one transaction.
func (u *Usecase) Run(ctx context.Context, prequalificationID int64, actor string) (*RunSummary, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	start := time.Now()
	businessDate := loan.DateOnly(u.now())

	var (
		summary *RunSummary
		rows    []domain.Result
		cats    map[int64]policy.Category
	)
	err := u.uow.WithinGroupTx(ctx, prequalificationID, func(r uow.Repos, g *prequalification.Group) error {
		if _, err := r.Products.GetByID(ctx, g.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return product.ErrNotFound
			}
			return err
		}

		if err := r.Checklist.DeleteResults(ctx, g.ID); err != nil {
			return err
		}

		groupCats, err := r.Checklist.CategoriesForProduct(ctx, g.ProductID, domain.ValidationTypeGroup)
		if err != nil {
			return err
		}
		memberCats, err := r.Checklist.CategoriesForProduct(ctx, g.ProductID, domain.ValidationTypeIndividual)
		if err != nil {
			return err
		}
		views, err := r.Prequalifications.MemberViews(ctx, g.ID)
		if err != nil {
			return err
		}

		cats = make(map[int64]policy.Category, len(groupCats)+len(memberCats))
		summary = &RunSummary{PrequalificationID: g.ID, Verdicts: map[policy.Verdict]int{}}

		groupSubject := policy.Subject{
			ProductID:       g.ProductID,
			RequestedAmount: g.TotalRequested(),
			Recredit:        g.IsRecredit(),
			MemberCount:     len(g.Members),
			BusinessDate:    businessDate,
		}
		if len(views) > 0 {
			groupSubject.Area = policy.ParseArea(u.codes.Label(codes.ListArea, views[0].AreaCodeValueID))
		}
		for _, c := range groupCats {
			cats[c.ID] = c.Policy()
			rows = append(rows, domain.Result{
				PrequalificationID:   g.ID,
				CategoryID:           c.ID,
				PrequalificationType: domain.TypeGroup,
				ValidationColor:      u.evaluator.Evaluate(c.Policy(), groupSubject),
				CreatedBy:            actor,
			})
			summary.GroupResults++
		}

		if len(memberCats) > 0 {
			for _, v := range views {
				subject, err := u.memberSubject(ctx, r.Loans, g, v, businessDate)
				if err != nil {
					return err
				}
				memberID := v.MemberID
				for _, c := range memberCats {
					cats[c.ID] = c.Policy()
					rows = append(rows, domain.Result{
						PrequalificationID:   g.ID,
						CategoryID:           c.ID,
						MemberID:             &memberID,
						ClientID:             v.ClientID,
						PrequalificationType: domain.TypeIndividual,
						ValidationColor:      u.evaluator.Evaluate(c.Policy(), subject),
						CreatedBy:            actor,
					})
					summary.IndividualResults++
				}
			}
		}

		if err := r.Checklist.CreateResults(ctx, rows); err != nil {
			return integrityError(err)
		}

		entry := g.Transition(prequalification.StatusHardPolicyChecked, actor, "hard policy checklist validated")
		if err := r.Prequalifications.SaveStatus(ctx, g); err != nil {
			return integrityError(err)
		}
		if err := r.Prequalifications.AppendStatusLog(ctx, entry); err != nil {
			return integrityError(err)
		}
		summary.Status = g.Status.String()
		return nil
	})
	metrics.ChecklistRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = prequalification.ErrNotFound
		}
		metrics.ChecklistRunsTotal.WithLabelValues(outcome(err)).Inc()
		u.log.Warn("checklist run failed",
			zap.Int64("prequalification_id", prequalificationID),
			zap.String("actor", actor),
			zap.Error(err))
		return nil, err
	}

	for _, row := range rows {
		summary.Verdicts[row.ValidationColor]++
		metrics.PolicyVerdictsTotal.WithLabelValues(string(cats[row.CategoryID]), string(row.ValidationColor)).Inc()
	}
	metrics.ChecklistRunsTotal.WithLabelValues("ok").Inc()
	u.log.Info("checklist regenerated",
		zap.Int64("prequalification_id", prequalificationID),
		zap.String("actor", actor),
		zap.Int("group_results", summary.GroupResults),
		zap.Int("individual_results", summary.IndividualResults),
		zap.Duration("elapsed", time.Since(start)))
	return summary, nil
}

func (u *Usecase) memberSubject(ctx context.Context, loans loan.Repository, g *prequalification.Group, v prequalification.MemberView, businessDate time.Time) (policy.Subject, error) {
	s := policy.Subject{
		ProductID:       g.ProductID,
		RequestedAmount: v.RequestedAmount,
		Recredit:        g.IsRecredit(),
		Area:            policy.ParseArea(u.codes.Label(codes.ListArea, v.AreaCodeValueID)),
		BusinessDate:    businessDate,
		DateOfBirth:     v.DateOfBirth,
		Gender:          u.codes.Label(codes.ListGender, v.GenderCodeValueID),
		MemberCount:     len(g.Members),
	}
	if v.ClientID == nil {
		return s, nil
	}
	h, err := loans.History(ctx, *v.ClientID)
	if err != nil {
		return s, fmt.Errorf("loan history of client %d: %w", *v.ClientID, err)
	}
	s.PriorCycles = h.PriorCycles
	s.LoanStatuses = h.Statuses
	s.LastClosedPrincipal = h.LastClosedPrincipal
	return s, nil
}

// List returns the stored results of a prequalification.
func (u *Usecase) List(ctx context.Context, prequalificationID int64) ([]ResultDTO, error) {
	out, err := u.results.ListResults(ctx, prequalificationID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []ResultDTO{}
	}
	return out, nil
}

func integrityError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", domain.ErrDataIntegrity, err)
	}
	return err
}

func outcome(err error) string {
	switch {
	case errors.Is(err, prequalification.ErrNotFound), errors.Is(err, product.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDataIntegrity):
		return "integrity"
	}
	return "error"
}
