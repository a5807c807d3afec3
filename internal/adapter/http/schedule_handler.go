package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/usecase/schedule"
)

type ScheduleHandler struct {
	uc  *schedule.Usecase
	log *zap.Logger
	now func() time.Time
}

func NewScheduleHandler(uc *schedule.Usecase, log *zap.Logger) *ScheduleHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleHandler{uc: uc, log: log, now: func() time.Time { return time.Now().UTC() }}
}

type recalculateReq struct {
	LoanID       int64  `param:"loan_id" validate:"gt=0"`
	BusinessDate string `json:"business_date" validate:"omitempty,isodate"`
}

// Recalculate handles POST /loans/:loan_id/schedule/recalculate. The business
// date defaults to today (UTC).
func (h *ScheduleHandler) Recalculate(c echo.Context) error {
	var req recalculateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	on := loan.DateOnly(h.now())
	if req.BusinessDate != "" {
		parsed, err := time.Parse(dateLayout, req.BusinessDate)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "BusinessDate", Message: "must be a date formatted YYYY-MM-DD"}},
			})
		}
		on = parsed
	}

	data := &loan.ScheduleData{LoanID: req.LoanID, BusinessDate: on, FuturePeriods: []loan.Period{}}
	if err := h.uc.Recompute(c.Request().Context(), req.LoanID, on, data); err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error("schedule recalculation failed", zap.Int64("loan_id", req.LoanID), zap.Error(err))
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}
