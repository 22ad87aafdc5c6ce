package adapters

import (
	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
)

// ConfigIdentityProvider serves the identity client config loaded from the environment.
type ConfigIdentityProvider struct {
	cfg config.IdentityConfig
}

// NewConfigIdentityProvider creates a provider backed by cfg.
func NewConfigIdentityProvider(cfg config.IdentityConfig) *ConfigIdentityProvider {
	return &ConfigIdentityProvider{cfg: cfg}
}

// ClientConfig returns ok=false until an API key is set.
func (p *ConfigIdentityProvider) ClientConfig() (adapter.IdentityClientConfig, bool) {
	if p.cfg.APIKey == "" {
		return adapter.IdentityClientConfig{}, false
	}
	return adapter.IdentityClientConfig{
		APIKey:            p.cfg.APIKey,
		AuthDomain:        p.cfg.AuthDomain,
		ProjectID:         p.cfg.ProjectID,
		StorageBucket:     p.cfg.StorageBucket,
		MessagingSenderID: p.cfg.MessagingSenderID,
		AppID:             p.cfg.AppID,
		MeasurementID:     p.cfg.MeasurementID,
	}, true
}

var _ adapter.IdentityConfigProvider = (*ConfigIdentityProvider)(nil)
