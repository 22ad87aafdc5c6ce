// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// IdentityClientConfig is the public client configuration of the identity provider,
// handed to the browser so it can bootstrap its sign-in flow.
type IdentityClientConfig struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
	MeasurementID     string
}

// IdentityConfigProvider supplies the identity provider client configuration.
type IdentityConfigProvider interface {
	// ClientConfig returns the configuration, or ok=false when the provider is not configured.
	ClientConfig() (cfg IdentityClientConfig, ok bool)
}
