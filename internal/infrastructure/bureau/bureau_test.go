package bureau

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/testutil/loanmock"
)

func TestHistoryChecker_Classify(t *testing.T) {
	cases := []struct {
		name     string
		statuses []loan.Status
		want     policy.Verdict
	}{
		{"clean", []loan.Status{loan.StatusClosed}, policy.Green},
		{"active", []loan.Status{loan.StatusClosed, loan.StatusActive}, policy.Yellow},
		{"written off wins", []loan.Status{loan.StatusActive, loan.StatusWrittenOff}, policy.Red},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &loanmock.Repo{HistoryFn: func(context.Context, int64) (*loan.History, error) {
				return &loan.History{Statuses: tc.statuses}, nil
			}}
			client := int64(9)
			got, err := NewHistoryChecker(repo).Classify(context.Background(), prequalification.MemberView{ClientID: &client})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := NewHistoryChecker(&loanmock.Repo{}).Classify(context.Background(), prequalification.MemberView{})
	require.NoError(t, err)
	assert.Equal(t, policy.Green, got, "members without a client record are green")
}

type countingChecker struct {
	calls   int
	verdict policy.Verdict
}

func (c *countingChecker) Classify(context.Context, prequalification.MemberView) (policy.Verdict, error) {
	c.calls++
	return c.verdict, nil
}

func TestCachedChecker_ReadThrough(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &countingChecker{verdict: policy.Yellow}
	c := NewCachedChecker(next, rdb, time.Hour, zaptest.NewLogger(t))
	ctx := context.Background()
	m := prequalification.MemberView{DPI: "2500123450101"}

	for i := 0; i < 3; i++ {
		got, err := c.Classify(ctx, m)
		require.NoError(t, err)
		assert.Equal(t, policy.Yellow, got)
	}
	assert.Equal(t, 1, next.calls)

	v, err := s.Get("bureau:dpi:2500123450101")
	require.NoError(t, err)
	assert.Equal(t, "YELLOW", v)
	assert.Equal(t, time.Hour, s.TTL("bureau:dpi:2500123450101"))

	s.FastForward(2 * time.Hour)
	_, err = c.Classify(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedChecker_BypassAndOutage(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &countingChecker{verdict: policy.Green}
	c := NewCachedChecker(next, rdb, time.Minute, nil)
	ctx := context.Background()

	// no DPI, no cache
	_, err := c.Classify(ctx, prequalification.MemberView{})
	require.NoError(t, err)
	_, err = c.Classify(ctx, prequalification.MemberView{})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
	assert.Empty(t, s.Keys())

	s.Close()
	got, err := c.Classify(ctx, prequalification.MemberView{DPI: "X"})
	require.NoError(t, err)
	assert.Equal(t, policy.Green, got)
	assert.Equal(t, 3, next.calls)
}
