package dto

import "github.com/finance-tracker/planner/internal/application/adapter"

// WelcomeEmailRequest represents the request body for the welcome email relay.
type WelcomeEmailRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// WelcomeEmailResponse confirms the email was queued.
type WelcomeEmailResponse struct {
	Queued bool   `json:"queued"`
	JobID  string `json:"job_id"`
}

// IdentityConfigResponse is the identity provider client config, in the casing browser SDKs expect.
type IdentityConfigResponse struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	MeasurementID     string `json:"measurementId,omitempty"`
}

// ToIdentityConfigResponse converts the identity client config.
func ToIdentityConfigResponse(cfg adapter.IdentityClientConfig) IdentityConfigResponse {
	return IdentityConfigResponse{
		APIKey:            cfg.APIKey,
		AuthDomain:        cfg.AuthDomain,
		ProjectID:         cfg.ProjectID,
		StorageBucket:     cfg.StorageBucket,
		MessagingSenderID: cfg.MessagingSenderID,
		AppID:             cfg.AppID,
		MeasurementID:     cfg.MeasurementID,
	}
}
