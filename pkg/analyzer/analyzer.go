package analyzer

import (
	"context"

	"github.com/helmcode/devops-agent/pkg/llm"
	"github.com/helmcode/devops-agent/pkg/model"
	"github.com/helmcode/devops-agent/pkg/prompts"
)

type Analyzer struct {
	llm llm.LLM
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l}
}

// AnalyzeError asks for cause, fix and prevention of errorText. Failures are
// returned as *llm.Error.
func (a *Analyzer) AnalyzeError(ctx context.Context, errorText string) (*model.Response, error) {
	return a.ask(ctx, model.KindAnalysis, errorText, prompts.BuildAnalyzePrompt(errorText))
}

// SuggestInstall asks for installation instructions for toolName.
func (a *Analyzer) SuggestInstall(ctx context.Context, toolName string) (*model.Response, error) {
	return a.ask(ctx, model.KindInstall, toolName, prompts.BuildInstallPrompt(toolName))
}

func (a *Analyzer) ask(ctx context.Context, kind model.Kind, subject, prompt string) (*model.Response, error) {
	content, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return &model.Response{
		Kind:    kind,
		Subject: subject,
		Model:   a.llm.GetModel(),
		Content: content,
	}, nil
}
