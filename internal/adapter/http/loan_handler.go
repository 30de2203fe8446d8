package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domain "fundo-loan-service/internal/domain/loan"
	uc "fundo-loan-service/internal/usecase/loan"
)

const conflictMessage = "the loan was modified by another process, please refresh and retry"

type LoanHandler struct{ uc *uc.Usecase }

func NewLoanHandler(u *uc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

type createLoanReq struct {
	ID             uint64          `json:"id"`
	ApplicantName  string          `json:"applicantName"`
	Amount         decimal.Decimal `json:"amount" validate:"dec2"`
	CurrentBalance decimal.Decimal `json:"currentBalance" validate:"dec2"`
	Status         string          `json:"status"`
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid loan id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: fmt.Sprintf("loan with id %d not found", id)})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), uc.CreateLoanInput(req))
	if err != nil {
		var verr *uc.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: toDetails(verr),
			})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/loan/%d", dto.ID))
	return c.JSON(http.StatusCreated, dto)
}

// MakePayment expects the body to be a bare JSON number, e.g. `600.00`.
func (h *LoanHandler) MakePayment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid loan id"})
	}
	var amount decimal.Decimal
	if err := json.NewDecoder(c.Request().Body).Decode(&amount); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "payment amount must be a number"})
	}

	dto, err := h.uc.ApplyPayment(c.Request().Context(), id, amount)
	if err != nil {
		var verr *uc.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "loan not found"})
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Fields[0].Message})
		case errors.Is(err, domain.ErrVersionConflict):
			return c.JSON(http.StatusConflict, messageResponse{Message: conflictMessage})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func toDetails(verr *uc.ValidationError) []FieldError {
	out := make([]FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, FieldError(f))
	}
	return out
}
