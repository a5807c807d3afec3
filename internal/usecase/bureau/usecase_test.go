package bureau

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/uow"
	"fineract-prequalification/internal/testutil/prequalificationmock"
	"fineract-prequalification/internal/testutil/uowmock"
)

type checkerFunc func(ctx context.Context, m prequalification.MemberView) (policy.Verdict, error)

func (f checkerFunc) Classify(ctx context.Context, m prequalification.MemberView) (policy.Verdict, error) {
	return f(ctx, m)
}

func TestValidate_ClassifiesMembersAndAdvancesStatus(t *testing.T) {
	g := &prequalification.Group{ID: 4, Status: prequalification.StatusHardPolicyChecked}
	saved := map[int64]string{}
	var logs []*prequalification.StatusLog
	repo := &prequalificationmock.Repo{
		GetByIDForUpdateFn: func(context.Context, int64) (*prequalification.Group, error) { return g, nil },
		MemberViewsFn: func(context.Context, int64) ([]prequalification.MemberView, error) {
			return []prequalification.MemberView{{MemberID: 1, DPI: "A"}, {MemberID: 2, DPI: "B"}}, nil
		},
		SaveBureauClassificationFn: func(_ context.Context, id int64, c string) error {
			saved[id] = c
			return nil
		},
		AppendStatusLogFn: func(_ context.Context, l *prequalification.StatusLog) error {
			logs = append(logs, l)
			return nil
		},
	}
	checker := checkerFunc(func(_ context.Context, m prequalification.MemberView) (policy.Verdict, error) {
		if m.DPI == "A" {
			return policy.Red, nil
		}
		return policy.Green, nil
	})
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Prequalifications: repo}), checker, zaptest.NewLogger(t))

	sum, err := u.Validate(context.Background(), 4, "mifos")
	require.NoError(t, err)
	assert.Equal(t, "BUREAU_CHECKED", sum.Status)
	assert.Equal(t, map[int64]string{1: "RED", 2: "GREEN"}, saved)
	assert.Equal(t, map[int64]policy.Verdict{1: policy.Red, 2: policy.Green}, sum.Members)
	require.Len(t, logs, 1)
	assert.Equal(t, prequalification.StatusHardPolicyChecked, logs[0].FromStatus)
	assert.Equal(t, prequalification.StatusBureauChecked, logs[0].ToStatus)
}

func TestValidate_NotFound(t *testing.T) {
	repo := &prequalificationmock.Repo{
		GetByIDForUpdateFn: func(context.Context, int64) (*prequalification.Group, error) { return nil, gorm.ErrRecordNotFound },
	}
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Prequalifications: repo}), nil, nil)

	_, err := u.Validate(context.Background(), 4, "mifos")
	assert.ErrorIs(t, err, prequalification.ErrNotFound)
}

func TestValidate_CheckerErrorStopsBeforeStatusChange(t *testing.T) {
	g := &prequalification.Group{ID: 4, Status: prequalification.StatusConsentAdded}
	statusSaved := false
	repo := &prequalificationmock.Repo{
		GetByIDForUpdateFn: func(context.Context, int64) (*prequalification.Group, error) { return g, nil },
		MemberViewsFn: func(context.Context, int64) ([]prequalification.MemberView, error) {
			return []prequalification.MemberView{{MemberID: 1}}, nil
		},
		SaveStatusFn: func(context.Context, *prequalification.Group) error {
			statusSaved = true
			return nil
		},
	}
	boom := errors.New("bureau down")
	checker := checkerFunc(func(context.Context, prequalification.MemberView) (policy.Verdict, error) { return "", boom })
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Prequalifications: repo}), checker, nil)

	_, err := u.Validate(context.Background(), 4, "mifos")
	assert.ErrorIs(t, err, boom)
	assert.False(t, statusSaved)
}
