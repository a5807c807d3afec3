package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/testutil/loanmock"
	"fineract-prequalification/internal/usecase/schedule"
)

func scheduleLoan() *loan.Loan {
	disbursed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &loan.Loan{
		ID:                           5,
		Status:                       loan.StatusActive,
		InterestRecalculationEnabled: true,
		ProcessorCode:                "interest-principal-penalties-fees-order-strategy",
		AnnualNominalInterestRate:    decimal.Zero,
		DisbursedOn:                  &disbursed,
		Installments: []loan.Installment{
			{Number: 1, DueDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Principal: decimal.NewFromInt(500)},
			{Number: 2, DueDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Principal: decimal.NewFromInt(500)},
		},
	}
}

func newScheduleEcho(t *testing.T, repo *loanmock.Repo) (*ScheduleHandler, func(target, body string) *httptest.ResponseRecorder) {
	t.Helper()
	h := NewScheduleHandler(schedule.NewUsecase(repo, nil), nil)
	e := newEchoWithValidator()
	e.POST("/loans/:loan_id/schedule/recalculate", h.Recalculate)
	return h, func(target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodPost, target, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}
}

func TestRecalculate_WithBusinessDate(t *testing.T) {
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return scheduleLoan(), nil }}
	_, do := newScheduleEcho(t, repo)

	rec := do("/loans/5/schedule/recalculate", `{"business_date":"2025-02-15"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var got loan.ScheduleData
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanID != 5 || len(got.FuturePeriods) != 1 {
		t.Fatalf("unexpected data: %+v", got)
	}
	p := got.FuturePeriods[0]
	if !p.CatchUp || !p.Principal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("catch-up period expected, got %+v", p)
	}
}

func TestRecalculate_DefaultsToToday(t *testing.T) {
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return scheduleLoan(), nil }}
	h, do := newScheduleEcho(t, repo)
	h.now = func() time.Time { return time.Date(2025, 1, 20, 17, 30, 0, 0, time.UTC) }

	rec := do("/loans/5/schedule/recalculate", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got loan.ScheduleData
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if !got.BusinessDate.Equal(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("business date = %v", got.BusinessDate)
	}
	if len(got.FuturePeriods) != 2 || got.FuturePeriods[0].CatchUp {
		t.Fatalf("nothing is due yet: %+v", got.FuturePeriods)
	}
}

func TestRecalculate_NoOpReturnsEmptyPeriods(t *testing.T) {
	l := scheduleLoan()
	l.InterestRecalculationEnabled = false
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return l, nil }}
	_, do := newScheduleEcho(t, repo)

	rec := do("/loans/5/schedule/recalculate", `{"business_date":"2025-02-15"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"future_periods":[]`) {
		t.Fatalf("expected empty future periods, got %s", rec.Body.String())
	}
}

func TestRecalculate_Errors(t *testing.T) {
	notFound := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) { return nil, gorm.ErrRecordNotFound }}
	cases := []struct {
		name   string
		target string
		body   string
		code   int
	}{
		{"bad date", "/loans/5/schedule/recalculate", `{"business_date":"15/02/2025"}`, stdhttp.StatusUnprocessableEntity},
		{"zero id", "/loans/0/schedule/recalculate", `{}`, stdhttp.StatusUnprocessableEntity},
		{"broken json", "/loans/5/schedule/recalculate", `{"business_date":`, stdhttp.StatusBadRequest},
		{"not found", "/loans/5/schedule/recalculate", `{}`, stdhttp.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, do := newScheduleEcho(t, notFound)
			rec := do(tc.target, tc.body)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d; body=%s", rec.Code, tc.code, rec.Body.String())
			}
		})
	}
}

type acceptAll struct{}

func (acceptAll) Validate(any) error { return nil }

func TestRecalculate_UnparsableDateWithoutValidatorTag(t *testing.T) {
	called := false
	repo := &loanmock.Repo{GetByIDFn: func(context.Context, int64) (*loan.Loan, error) {
		called = true
		return scheduleLoan(), nil
	}}
	h := NewScheduleHandler(schedule.NewUsecase(repo, nil), nil)
	e := echo.New()
	e.Validator = acceptAll{}
	e.POST("/loans/:loan_id/schedule/recalculate", h.Recalculate)

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/5/schedule/recalculate", strings.NewReader(`{"business_date":"2025-13-40"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body=%s", rec.Code, rec.Body.String())
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Details) != 1 || body.Details[0].Field != "BusinessDate" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
	if called {
		t.Fatalf("usecase must not run with an unparsable business date")
	}
}
