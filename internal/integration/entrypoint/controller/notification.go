package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/notification"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// NotificationController handles the identity config and email relay endpoints.
type NotificationController struct {
	sendWelcomeUseCase    *notification.SendWelcomeUseCase
	identityConfigUseCase *notification.GetIdentityConfigUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	sendWelcomeUseCase *notification.SendWelcomeUseCase,
	identityConfigUseCase *notification.GetIdentityConfigUseCase,
) *NotificationController {
	return &NotificationController{
		sendWelcomeUseCase:    sendWelcomeUseCase,
		identityConfigUseCase: identityConfigUseCase,
	}
}

// IdentityConfig handles GET /config/identity requests.
func (c *NotificationController) IdentityConfig(ctx *gin.Context) {
	output, err := c.identityConfigUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIdentityConfigResponse(output.Config))
}

// SendWelcome handles POST /notifications/welcome requests.
// The signed-in email is used when the body carries none. A welcome email that is
// already on its way for the user answers 200 instead of 202.
func (c *NotificationController) SendWelcome(ctx *gin.Context) {
	var req dto.WelcomeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	if req.Email == "" {
		if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
			req.Email = email
		}
	}

	output, err := c.sendWelcomeUseCase.Execute(ctx.Request.Context(), notification.SendWelcomeInput{
		UserID:      middleware.GetUserIDFromContext(ctx),
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusAccepted
	if !output.Queued {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.WelcomeEmailResponse{
		Queued: output.Queued,
		JobID:  output.JobID.String(),
	})
}
