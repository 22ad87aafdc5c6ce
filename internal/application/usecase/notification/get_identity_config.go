package notification

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// GetIdentityConfigOutput carries the identity provider client config for browsers.
type GetIdentityConfigOutput struct {
	Config adapter.IdentityClientConfig
}

// GetIdentityConfigUseCase relays the identity provider client config.
type GetIdentityConfigUseCase struct {
	provider adapter.IdentityConfigProvider
}

// NewGetIdentityConfigUseCase creates a new GetIdentityConfigUseCase instance.
func NewGetIdentityConfigUseCase(provider adapter.IdentityConfigProvider) *GetIdentityConfigUseCase {
	return &GetIdentityConfigUseCase{
		provider: provider,
	}
}

// Execute returns the config, or ErrIdentityConfigUnavailable when none is configured.
func (uc *GetIdentityConfigUseCase) Execute(_ context.Context) (*GetIdentityConfigOutput, error) {
	cfg, ok := uc.provider.ClientConfig()
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeIdentityConfigUnavailable,
			"identity provider is not configured",
			domainerror.ErrIdentityConfigUnavailable,
		)
	}
	return &GetIdentityConfigOutput{Config: cfg}, nil
}
