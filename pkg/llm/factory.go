package llm

import (
	"github.com/helmcode/devops-agent/pkg/config"
)

// NewFromConfig creates a client for the stored key and model. A non-empty
// modelOverride replaces the stored model for this client only.
func NewFromConfig(cfg *config.Config, modelOverride string, debug bool) *Client {
	model := cfg.Model
	if modelOverride != "" {
		model = modelOverride
	}
	return New(Options{
		BaseURL: config.BaseURL(),
		APIKey:  cfg.APIKey,
		Model:   model,
		Debug:   debug,
	})
}

// NewForSetup creates a client that is only used to validate keys and list
// models before any configuration exists.
func NewForSetup(debug bool) *Client {
	return New(Options{BaseURL: config.BaseURL(), Debug: debug})
}
