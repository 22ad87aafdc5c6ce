package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/agenda"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// AgendaController handles the calendar and archive endpoints.
type AgendaController struct {
	getAgendaUseCase   *agenda.GetAgendaUseCase
	changeMonthUseCase *agenda.ChangeMonthUseCase
	selectDateUseCase  *agenda.SelectDateUseCase
	getArchiveUseCase  *agenda.GetArchiveUseCase
}

// NewAgendaController creates a new agenda controller instance.
func NewAgendaController(
	getAgendaUseCase *agenda.GetAgendaUseCase,
	changeMonthUseCase *agenda.ChangeMonthUseCase,
	selectDateUseCase *agenda.SelectDateUseCase,
	getArchiveUseCase *agenda.GetArchiveUseCase,
) *AgendaController {
	return &AgendaController{
		getAgendaUseCase:   getAgendaUseCase,
		changeMonthUseCase: changeMonthUseCase,
		selectDateUseCase:  selectDateUseCase,
		getArchiveUseCase:  getArchiveUseCase,
	}
}

// Get handles GET /agenda requests. Without year and month the active month is shown.
func (c *AgendaController) Get(ctx *gin.Context) {
	input := agenda.GetAgendaInput{UserID: middleware.GetUserIDFromContext(ctx)}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			handleError(ctx, domainerror.NewLedgerError(domainerror.ErrCodeInvalidMonth, "year must be a number", domainerror.ErrInvalidMonth))
			return
		}
		input.Year = year
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			handleError(ctx, domainerror.NewLedgerError(domainerror.ErrCodeInvalidMonth, "month must be a number", domainerror.ErrInvalidMonth))
			return
		}
		input.Month = month
	}

	output, err := c.getAgendaUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgendaResponse(output))
}

// ChangeMonth handles PUT /agenda/month requests.
func (c *AgendaController) ChangeMonth(ctx *gin.Context) {
	var req dto.ChangeMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "year and month are required")
		return
	}

	view, err := c.changeMonthUseCase.Execute(ctx.Request.Context(), agenda.ChangeMonthInput{
		UserID: middleware.GetUserIDFromContext(ctx),
		Year:   req.Year,
		Month:  req.Month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgendaViewResponse(*view))
}

// SelectDate handles PUT /agenda/selected-date requests.
func (c *AgendaController) SelectDate(ctx *gin.Context) {
	var req dto.SelectDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	date := ""
	if req.Date != nil {
		date = *req.Date
	}

	view, err := c.selectDateUseCase.Execute(ctx.Request.Context(), agenda.SelectDateInput{
		UserID: middleware.GetUserIDFromContext(ctx),
		Date:   date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgendaViewResponse(*view))
}

// GetArchive handles GET /archive/:month requests.
func (c *AgendaController) GetArchive(ctx *gin.Context) {
	output, err := c.getArchiveUseCase.Execute(ctx.Request.Context(), agenda.GetArchiveInput{
		UserID:   middleware.GetUserIDFromContext(ctx),
		MonthKey: ctx.Param("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToArchiveResponse(output))
}
