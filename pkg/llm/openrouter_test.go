package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/helmcode/devops-agent/pkg/config"
)

type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, APIKey: "sk-test", Model: "openai/gpt-4o"})
}

func brokenClient(msg string) *Client {
	return New(Options{
		BaseURL:    "http://api.invalid",
		APIKey:     "sk-test",
		Model:      "openai/gpt-4o",
		HTTPClient: &http.Client{Transport: failingTransport{err: errors.New(msg)}},
	})
}

func TestChat_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		testboil.FailTestIfDiff(t, r.Header.Get("Authorization"), "Bearer sk-test")

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		testboil.FailTestIfDiff(t, body.Model, "openai/gpt-4o")
		testboil.FailTestIfDiff(t, len(body.Messages), 1)
		testboil.FailTestIfDiff(t, body.Messages[0].Role, "user")
		testboil.FailTestIfDiff(t, body.Messages[0].Content, "hello")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"## Cause\nsomething"}},{"message":{"content":"second"}}]}`))
	})

	got, err := c.Chat(context.Background(), "hello")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	testboil.FailTestIfDiff(t, got, "## Cause\nsomething")
}

func TestChat_StatusError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "api error body", body: `{"error":{"message":"Rate limit exceeded","code":429}}`},
		{name: "plain body", body: `slow down`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.Chat(context.Background(), "hello")
			var llmErr *Error
			if !errors.As(err, &llmErr) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			testboil.FailTestIfDiff(t, llmErr.Kind, KindStatus)
			testboil.FailTestIfDiff(t, llmErr.StatusCode, http.StatusTooManyRequests)
			testboil.AssertStringContains(t, err.Error(), "429")
		})
	}
}

func TestChat_TransportError(t *testing.T) {
	_, err := brokenClient("connection reset by peer").Chat(context.Background(), "hello")
	var llmErr *Error
	if !errors.As(err, &llmErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	testboil.FailTestIfDiff(t, llmErr.Kind, KindTransport)
	testboil.AssertStringContains(t, err.Error(), "connection reset by peer")
}

func TestChat_NoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := c.Chat(context.Background(), "hello")
	var llmErr *Error
	if !errors.As(err, &llmErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	testboil.FailTestIfDiff(t, llmErr.Kind, KindEmpty)
}

func TestListModels(t *testing.T) {
	t.Run("server order", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			testboil.FailTestIfDiff(t, r.URL.Path, "/models")
			testboil.FailTestIfDiff(t, r.Header.Get("Authorization"), "Bearer candidate")
			_, _ = w.Write([]byte(`{"data":[{"id":"z/last"},{"id":""},{"id":"a/first","name":"A"}]}`))
		})
		got := c.ListModels(context.Background(), "candidate")
		testboil.FailTestIfDiff(t, strings.Join(got, ","), "z/last,a/first")
	})

	fallbackCases := map[string]http.HandlerFunc{
		"non-200": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"empty list": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		},
	}
	for name, h := range fallbackCases {
		t.Run(name, func(t *testing.T) {
			got := newTestClient(t, h).ListModels(context.Background(), "candidate")
			testboil.FailTestIfDiff(t, len(got), 11)
			testboil.FailTestIfDiff(t, got[0], "anthropic/claude-3-opus")
		})
	}

	t.Run("transport error", func(t *testing.T) {
		got := brokenClient("no such host").ListModels(context.Background(), "candidate")
		testboil.FailTestIfDiff(t, len(got), 11)
	})

	t.Run("fallback is a copy", func(t *testing.T) {
		got := brokenClient("no such host").ListModels(context.Background(), "candidate")
		got[0] = "mutated"
		testboil.FailTestIfDiff(t, FallbackModels[0], "anthropic/claude-3-opus")
	})
}

func TestValidateKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		testboil.FailTestIfDiff(t, r.URL.Path, "/auth/key")
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"label":"test"}}`))
	})

	testboil.FailTestIfDiff(t, c.ValidateKey(context.Background(), "good"), true)
	testboil.FailTestIfDiff(t, c.ValidateKey(context.Background(), "bad"), false)
	testboil.FailTestIfDiff(t, c.ValidateKey(context.Background(), ""), false)
	testboil.FailTestIfDiff(t, brokenClient("timeout").ValidateKey(context.Background(), "good"), false)
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	testboil.FailTestIfDiff(t, c.baseURL, config.DefaultBaseURL)
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("DEBUG", "")
	testboil.FailTestIfDiff(t, New(Options{}).debugEnabled(), false)
	testboil.FailTestIfDiff(t, New(Options{Debug: true}).debugEnabled(), true)

	t.Setenv("DEBUG", "1")
	testboil.FailTestIfDiff(t, New(Options{}).debugEnabled(), true)
}

func TestNewFromConfig_ModelOverride(t *testing.T) {
	cfg := &config.Config{APIKey: "sk-test", Model: "openai/gpt-4o"}
	testboil.FailTestIfDiff(t, NewFromConfig(cfg, "", false).GetModel(), "openai/gpt-4o")

	c := NewFromConfig(cfg, "other/model", true)
	testboil.FailTestIfDiff(t, c.GetModel(), "other/model")
	testboil.FailTestIfDiff(t, c.debug, true)
}
