package llm

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/helmcode/devops-agent/pkg/config"
	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultValidateTimeout = 10 * time.Second
	DefaultListTimeout     = 10 * time.Second
	DefaultChatTimeout     = 30 * time.Second
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	APIKey     string
	Model      string
	Fallback   []string
	HTTPClient *http.Client
	// Debug logs requests and failures. DEBUG in the environment does the same.
	Debug bool
}

// Client talks to an OpenAI compatible API such as OpenRouter.
type Client struct {
	baseURL  string
	apiKey   string
	model    string
	fallback []string
	client   *http.Client
	debug    bool

	validateTimeout time.Duration
	listTimeout     time.Duration
	chatTimeout     time.Duration
}

func New(opts Options) *Client {
	c := &Client{
		baseURL:         strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:          opts.APIKey,
		model:           opts.Model,
		fallback:        opts.Fallback,
		client:          opts.HTTPClient,
		debug:           opts.Debug,
		validateTimeout: DefaultValidateTimeout,
		listTimeout:     DefaultListTimeout,
		chatTimeout:     DefaultChatTimeout,
	}
	if c.baseURL == "" {
		c.baseURL = config.DefaultBaseURL
	}
	if c.fallback == nil {
		c.fallback = FallbackModels
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	return c
}

// GetModel returns the model used for chat requests.
func (c *Client) GetModel() string {
	return c.model
}

func (c *Client) debugEnabled() bool {
	return c.debug || misc.Truthy(os.Getenv("DEBUG"))
}

func (c *Client) sdk(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.client
	return openai.NewClientWithConfig(cfg)
}

// Chat sends prompt as a single user message and returns the first choice.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	}
	if c.debugEnabled() {
		ancli.Okf("chat request: %v\n", debug.IndentedJsonFmt(req))
	}

	resp, err := c.sdk(c.apiKey).CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindEmpty, StatusCode: http.StatusOK, Message: "response contained no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps go-openai errors onto *Error.
func classify(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindStatus, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{Kind: KindStatus, StatusCode: reqErr.HTTPStatusCode, Message: strings.TrimSpace(string(reqErr.Body))}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTransport, Message: "request timed out: " + err.Error()}
	}
	return &Error{Kind: KindTransport, Message: err.Error()}
}
