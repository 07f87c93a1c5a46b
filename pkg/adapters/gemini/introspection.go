package gemini

import "github.com/aretw0/introspection"

// GatewayState exposes internal state for observability. The API key is never included.
type GatewayState struct {
	Model      string `json:"model"`
	BaseURL    string `json:"base_url"`
	Configured bool   `json:"configured"`
	Requests   int    `json:"requests"`
	Failures   int    `json:"failures"`
	LastError  string `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GatewayState{
		Model:      g.model,
		BaseURL:    g.baseURL,
		Configured: g.Configured(),
		Requests:   g.requests,
		Failures:   g.failures,
		LastError:  g.lastError,
	}
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "gemini"
}

var _ introspection.Introspectable = (*Gateway)(nil)
var _ introspection.Component = (*Gateway)(nil)
