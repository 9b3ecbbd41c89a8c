package llm

import (
	"context"
	"net/http"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

// FallbackModels is offered when the model directory cannot be reached. It is not
// checked against what the account may actually use.
var FallbackModels = []string{
	"anthropic/claude-3-opus",
	"anthropic/claude-3-sonnet",
	"anthropic/claude-3-haiku",
	"google/gemini-pro",
	"google/gemini-1.5-pro",
	"openai/gpt-4o",
	"openai/gpt-4-turbo",
	"openai/gpt-3.5-turbo",
	"meta/llama-3-70b-instruct",
	"mistralai/mixtral-8x7b",
	"mistralai/mistral-7b-instruct",
}

// ListModels returns the model identifiers visible to apiKey in server order,
// or the fallback list when the directory fails or is empty.
func (c *Client) ListModels(ctx context.Context, apiKey string) []string {
	ctx, cancel := context.WithTimeout(ctx, c.listTimeout)
	defer cancel()

	list, err := c.sdk(apiKey).ListModels(ctx)
	if err != nil {
		ancli.Warnf("could not fetch models, using fallback list: %v\n", classify(err))
		return c.fallbackModels()
	}

	models := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		if m.ID != "" {
			models = append(models, m.ID)
		}
	}
	if len(models) == 0 {
		ancli.Warnf("no models returned from API, using fallback list\n")
		return c.fallbackModels()
	}
	if c.debugEnabled() {
		ancli.Okf("fetched %d models\n", len(models))
	}
	return models
}

func (c *Client) fallbackModels() []string {
	out := make([]string, len(c.fallback))
	copy(out, c.fallback)
	return out
}

// ValidateKey reports whether the API accepts apiKey. Any failure counts as
// rejection.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) bool {
	if apiKey == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.validateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/key", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if c.debugEnabled() {
			ancli.Errf("api key validation error: %v\n", err)
		}
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
