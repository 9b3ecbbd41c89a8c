// Package setup implements the interactive first-run configuration.
package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/devops-agent/pkg/config"
)

// ErrInputClosed is returned when input ends before setup has finished.
var ErrInputClosed = errors.New("input closed before setup completed")

// State of one prompt loop.
type State int

const (
	AwaitingInput State = iota
	Validating
	Accepted
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Validating:
		return "Validating"
	case Accepted:
		return "Accepted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type KeyValidator interface {
	ValidateKey(ctx context.Context, apiKey string) bool
}

type ModelLister interface {
	ListModels(ctx context.Context, apiKey string) []string
}

type Saver interface {
	Save(cfg *config.Config) error
}

// Wizard collects an API key and a model and persists them. Both prompt loops
// repeat until they get acceptable input.
type Wizard struct {
	in        *bufio.Reader
	out       io.Writer
	validator KeyValidator
	lister    ModelLister
	store     Saver
}

// New creates a wizard. Pass the same *bufio.Reader used elsewhere for in to
// avoid losing buffered input.
func New(in io.Reader, out io.Writer, validator KeyValidator, lister ModelLister, store Saver) *Wizard {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Wizard{
		in:        br,
		out:       out,
		validator: validator,
		lister:    lister,
		store:     store,
	}
}

// Run performs the full interactive setup.
func (w *Wizard) Run(ctx context.Context) (*config.Config, error) {
	w.banner()
	fmt.Fprintln(w.out, "\nYou will now be prompted to enter your OpenRouter API key.")

	key, err := w.acquireKey(ctx)
	if err != nil {
		return nil, err
	}
	model, err := w.selectModel(ctx, key)
	if err != nil {
		return nil, err
	}
	return w.finish(key, model)
}

// RunWith is the non-interactive path. The key is accepted without validation;
// model selection is only prompted for when model is empty.
func (w *Wizard) RunWith(ctx context.Context, apiKey, model string) (*config.Config, error) {
	fmt.Fprintln(w.out, "Using provided API key from command line")

	if model != "" {
		fmt.Fprintf(w.out, "Using provided model: %s\n", model)
	} else {
		var err error
		if model, err = w.selectModel(ctx, apiKey); err != nil {
			return nil, err
		}
	}
	return w.finish(apiKey, model)
}

func (w *Wizard) acquireKey(ctx context.Context) (string, error) {
	state := AwaitingInput
	var key string
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		switch state {
		case AwaitingInput:
			fmt.Fprint(w.out, "\nEnter your OpenRouter API key: ")
			line, err := w.readLine()
			if err != nil {
				return "", err
			}
			key = line
			state = Validating
		case Validating:
			fmt.Fprintln(w.out, "Validating API key...")
			if w.validator.ValidateKey(ctx, key) {
				color.New(color.FgGreen).Fprintln(w.out, "API key validation successful!")
				state = Accepted
			} else {
				color.New(color.FgRed).Fprintln(w.out, "Invalid API key. Please try again.")
				state = AwaitingInput
			}
		case Accepted:
			return key, nil
		}
	}
}

func (w *Wizard) selectModel(ctx context.Context, apiKey string) (string, error) {
	fmt.Fprintln(w.out, "\nFetching available models...")
	models := w.lister.ListModels(ctx, apiKey)

	fmt.Fprintln(w.out, "\nAvailable Models:")
	for i, m := range models {
		fmt.Fprintf(w.out, "%d. %s\n", i+1, m)
	}

	state := AwaitingInput
	var input, model string
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		switch state {
		case AwaitingInput:
			fmt.Fprint(w.out, "\nSelect a model (number) or enter a custom model ID: ")
			line, err := w.readLine()
			if err != nil {
				return "", err
			}
			input = line
			state = Validating
		case Validating:
			choice, custom, ok := ChooseModel(input, models)
			if !ok {
				if input == "" {
					fmt.Fprintln(w.out, "Please enter a valid number or model ID.")
				} else {
					fmt.Fprintf(w.out, "Please enter a number between 1 and %d.\n", len(models))
				}
				state = AwaitingInput
				continue
			}
			model = choice
			if custom {
				fmt.Fprintf(w.out, "Using custom model: %s\n", model)
			} else {
				fmt.Fprintf(w.out, "Selected model: %s\n", model)
			}
			state = Accepted
		case Accepted:
			return model, nil
		}
	}
}

// ChooseModel resolves input against models. Digits pick a 1-based entry and
// must be in range; anything else is taken verbatim as a custom model ID.
func ChooseModel(input string, models []string) (model string, custom bool, ok bool) {
	if input == "" {
		return "", false, false
	}
	if !isDigits(input) {
		return input, true, true
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(models) {
		return "", false, false
	}
	return models[n-1], false, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (w *Wizard) finish(apiKey, model string) (*config.Config, error) {
	cfg := &config.Config{
		APIKey:          apiKey,
		Model:           model,
		ErrorMonitoring: config.DefaultMonitoring(),
	}

	fmt.Fprintln(w.out, "\nSaving configuration...")
	if err := w.store.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}
	color.New(color.FgGreen, color.Bold).Fprintln(w.out, "\nSetup completed successfully!")
	return cfg, nil
}

func (w *Wizard) banner() {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(w.out, "\n"+line)
	color.New(color.FgCyan, color.Bold).Fprintln(w.out, "Welcome to DevOps AI Agent Setup!")
	fmt.Fprintln(w.out, line)
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
