package model

type Kind string

const (
	KindAnalysis Kind = "analysis"
	KindInstall  Kind = "install"
)

// Response is a chat reply together with what was asked.
type Response struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"`
	Model   string `json:"model" yaml:"model"`
	Content string `json:"content" yaml:"content"`
}
