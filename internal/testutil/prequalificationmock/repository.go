package prequalificationmock

import (
	"context"

	domain "fineract-prequalification/internal/domain/prequalification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters return context.Canceled, unset writers succeed.
type Repo struct {
	GetByIDFn                  func(ctx context.Context, id int64) (*domain.Group, error)
	GetByIDForUpdateFn         func(ctx context.Context, id int64) (*domain.Group, error)
	SaveStatusFn               func(ctx context.Context, g *domain.Group) error
	SaveBureauClassificationFn func(ctx context.Context, memberID int64, classification string) error
	MemberViewsFn              func(ctx context.Context, groupID int64) ([]domain.MemberView, error)
	AppendStatusLogFn          func(ctx context.Context, l *domain.StatusLog) error
	StatusLogsFn               func(ctx context.Context, prequalificationID int64) ([]domain.StatusLog, error)
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Group, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveStatus(ctx context.Context, g *domain.Group) error {
	if m.SaveStatusFn != nil {
		return m.SaveStatusFn(ctx, g)
	}
	return nil
}

func (m *Repo) SaveBureauClassification(ctx context.Context, memberID int64, classification string) error {
	if m.SaveBureauClassificationFn != nil {
		return m.SaveBureauClassificationFn(ctx, memberID, classification)
	}
	return nil
}

func (m *Repo) MemberViews(ctx context.Context, groupID int64) ([]domain.MemberView, error) {
	if m.MemberViewsFn != nil {
		return m.MemberViewsFn(ctx, groupID)
	}
	return nil, nil
}

func (m *Repo) AppendStatusLog(ctx context.Context, l *domain.StatusLog) error {
	if m.AppendStatusLogFn != nil {
		return m.AppendStatusLogFn(ctx, l)
	}
	return nil
}

func (m *Repo) StatusLogs(ctx context.Context, prequalificationID int64) ([]domain.StatusLog, error) {
	if m.StatusLogsFn != nil {
		return m.StatusLogsFn(ctx, prequalificationID)
	}
	return nil, nil
}
