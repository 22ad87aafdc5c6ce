package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// TransactionController handles expense and income endpoints.
// The list is chosen by the :kind path parameter.
type TransactionController struct {
	addUseCase    *transaction.AddTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	removeUseCase *transaction.RemoveTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	addUseCase *transaction.AddTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	removeUseCase *transaction.RemoveTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
	}
}

// Add handles POST /transactions/:kind requests.
func (c *TransactionController) Add(ctx *gin.Context) {
	kind, err := transaction.ParseKind(ctx.Param("kind"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), transaction.AddTransactionInput{
		UserID: middleware.GetUserIDFromContext(ctx),
		Kind:   kind,
		Draft:  req.ToDraft(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddTransactionResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Archived:    output.Archived,
		MonthKey:    output.MonthKey,
	})
}

// Update handles PATCH /transactions/:kind/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	kind, err := transaction.ParseKind(ctx.Param("kind"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		UserID:        middleware.GetUserIDFromContext(ctx),
		Kind:          kind,
		TransactionID: ctx.Param("id"),
		Patch:         req.ToPatch(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Remove handles DELETE /transactions/:kind/:id requests.
func (c *TransactionController) Remove(ctx *gin.Context) {
	kind, err := transaction.ParseKind(ctx.Param("kind"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	err = c.removeUseCase.Execute(ctx.Request.Context(), transaction.RemoveTransactionInput{
		UserID:        middleware.GetUserIDFromContext(ctx),
		Kind:          kind,
		TransactionID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
