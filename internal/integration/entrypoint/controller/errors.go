// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// handleError writes the error response for a use case failure.
func handleError(ctx *gin.Context, err error) {
	var (
		ledgerErr   *domainerror.LedgerError
		categoryErr *domainerror.CategoryError
		emailErr    *domainerror.EmailError
		authErr     *domainerror.AuthError
	)

	switch {
	case errors.As(err, &ledgerErr):
		respond(ctx, statusForLedgerError(ledgerErr.Code), ledgerErr.Message, string(ledgerErr.Code), err)
	case errors.As(err, &categoryErr):
		respond(ctx, statusForCategoryError(categoryErr.Code), categoryErr.Message, string(categoryErr.Code), err)
	case errors.As(err, &emailErr):
		respond(ctx, statusForEmailError(emailErr.Code), emailErr.Message, string(emailErr.Code), err)
	case errors.As(err, &authErr):
		respond(ctx, statusForAuthError(authErr.Code), authErr.Message, string(authErr.Code), err)
	default:
		respond(ctx, http.StatusInternalServerError, "An internal error occurred", "", err)
	}
}

func respond(ctx *gin.Context, status int, message, code string, err error) {
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		if code == "" {
			message = "An internal error occurred"
		}
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// badRequest writes a 400 for a body or query that could not be bound.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidRequestBody),
	})
}

func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidMonthKey,
		domainerror.ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingCategoryFields,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeCategoryIconTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForEmailError(code domainerror.EmailErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingRecipient,
		domainerror.ErrCodeEmailInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeIdentityConfigUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
