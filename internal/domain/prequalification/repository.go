package prequalification

import "context"

type Repository interface {
	// GetByID loads the group with its members ordered by id.
	GetByID(ctx context.Context, id int64) (*Group, error)
	// GetByIDForUpdate is GetByID with the group row locked for the current tx.
	GetByIDForUpdate(ctx context.Context, id int64) (*Group, error)

	SaveStatus(ctx context.Context, g *Group) error
	SaveBureauClassification(ctx context.Context, memberID int64, classification string) error

	MemberViews(ctx context.Context, groupID int64) ([]MemberView, error)

	AppendStatusLog(ctx context.Context, l *StatusLog) error
	StatusLogs(ctx context.Context, prequalificationID int64) ([]StatusLog, error)
}
