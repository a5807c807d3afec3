package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fineract-prequalification/internal/adapter/middleware"
	"fineract-prequalification/internal/usecase/bureau"
	"fineract-prequalification/internal/usecase/checklist"
)

const (
	CommandValidatePrequalification = "validateprequalification"
	CommandBureauValidation         = "bureauValidation"
)

type ChecklistHandler struct {
	checklist *checklist.Usecase
	bureau    *bureau.Usecase
	log       *zap.Logger
}

func NewChecklistHandler(cl *checklist.Usecase, bu *bureau.Usecase, log *zap.Logger) *ChecklistHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChecklistHandler{checklist: cl, bureau: bu, log: log}
}

type commandReq struct {
	PrequalificationID int64  `param:"prequalification_id" validate:"gt=0"`
	Actor              string `validate:"required,actor"`
}

// Command handles POST /prequalification/checklist/:prequalification_id?command=...
func (h *ChecklistHandler) Command(c echo.Context) error {
	var req commandReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid prequalification id"})
	}
	req.Actor = strings.TrimSpace(c.Request().Header.Get(middleware.HeaderUserID))

	command := c.QueryParam("command")
	if command != CommandValidatePrequalification && command != CommandBureauValidation {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unsupported command",
			Details: []FieldError{{
				Field:   "command",
				Message: "must be one of: " + CommandValidatePrequalification + " " + CommandBureauValidation,
			}},
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	ctx := c.Request().Context()
	var (
		out any
		err error
	)
	switch command {
	case CommandValidatePrequalification:
		out, err = h.checklist.Run(ctx, req.PrequalificationID, req.Actor)
	case CommandBureauValidation:
		out, err = h.bureau.Validate(ctx, req.PrequalificationID, req.Actor)
	}
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error("checklist command failed",
				zap.String("command", command),
				zap.Int64("prequalification_id", req.PrequalificationID),
				zap.Error(err))
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type listReq struct {
	PrequalificationID int64 `query:"prequalificationId" validate:"required,gt=0"`
}

// List handles GET /prequalification/checklist?prequalificationId=
func (h *ChecklistHandler) List(c echo.Context) error {
	var req listReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid prequalificationId"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	out, err := h.checklist.List(c.Request().Context(), req.PrequalificationID)
	if err != nil {
		h.log.Error("checklist list failed", zap.Int64("prequalification_id", req.PrequalificationID), zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
