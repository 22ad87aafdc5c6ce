package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/application/usecase/invest"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and investment endpoints.
type DashboardController struct {
	totalsUseCase      *dashboard.GetTotalsUseCase
	projectionUseCase  *dashboard.GetProjectionUseCase
	suggestionsUseCase *invest.GetSuggestionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	totalsUseCase *dashboard.GetTotalsUseCase,
	projectionUseCase *dashboard.GetProjectionUseCase,
	suggestionsUseCase *invest.GetSuggestionsUseCase,
) *DashboardController {
	return &DashboardController{
		totalsUseCase:      totalsUseCase,
		projectionUseCase:  projectionUseCase,
		suggestionsUseCase: suggestionsUseCase,
	}
}

// GetTotals handles GET /dashboard/totals requests.
func (c *DashboardController) GetTotals(ctx *gin.Context) {
	includeFuture, _ := strconv.ParseBool(ctx.DefaultQuery("include_future", "false"))

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), dashboard.GetTotalsInput{
		UserID:        middleware.GetUserIDFromContext(ctx),
		IncludeFuture: includeFuture,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(output))
}

// GetProjection handles GET /dashboard/projection requests.
func (c *DashboardController) GetProjection(ctx *gin.Context) {
	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), dashboard.GetProjectionInput{
		UserID: middleware.GetUserIDFromContext(ctx),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(output))
}

// GetSuggestions handles GET /invest/suggestions requests.
func (c *DashboardController) GetSuggestions(ctx *gin.Context) {
	output, err := c.suggestionsUseCase.Execute(ctx.Request.Context(), invest.GetSuggestionsInput{
		UserID: middleware.GetUserIDFromContext(ctx),
		Risk:   ctx.Query("risk"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionsResponse(output))
}
