package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// StateController handles the state and amount endpoints.
type StateController struct {
	getStateUseCase          *profile.GetStateUseCase
	setSalaryUseCase         *profile.SetSalaryUseCase
	setInitialBalanceUseCase *profile.SetInitialBalanceUseCase
}

// NewStateController creates a new state controller instance.
func NewStateController(
	getStateUseCase *profile.GetStateUseCase,
	setSalaryUseCase *profile.SetSalaryUseCase,
	setInitialBalanceUseCase *profile.SetInitialBalanceUseCase,
) *StateController {
	return &StateController{
		getStateUseCase:          getStateUseCase,
		setSalaryUseCase:         setSalaryUseCase,
		setInitialBalanceUseCase: setInitialBalanceUseCase,
	}
}

// Get handles GET /state requests.
func (c *StateController) Get(ctx *gin.Context) {
	output, err := c.getStateUseCase.Execute(ctx.Request.Context(), profile.GetStateInput{
		UserID: middleware.GetUserIDFromContext(ctx),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStateResponse(output))
}

// SetSalary handles PUT /state/salary requests.
func (c *StateController) SetSalary(ctx *gin.Context) {
	input, ok := bindAmount(ctx)
	if !ok {
		return
	}

	output, err := c.setSalaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AmountResponse{Amount: output.Amount})
}

// SetInitialBalance handles PUT /state/initial-balance requests.
func (c *StateController) SetInitialBalance(ctx *gin.Context) {
	input, ok := bindAmount(ctx)
	if !ok {
		return
	}

	output, err := c.setInitialBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AmountResponse{Amount: output.Amount})
}

// bindAmount parses an amount body. Malformed amounts become zero rather than failing.
func bindAmount(ctx *gin.Context) (profile.SetAmountInput, bool) {
	var req dto.AmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return profile.SetAmountInput{}, false
	}
	return profile.SetAmountInput{
		UserID: middleware.GetUserIDFromContext(ctx),
		Amount: entity.ParseAmount(req.Amount),
	}, true
}
