package prompts

import (
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestBuildAnalyzePrompt(t *testing.T) {
	errText := "panic: runtime error: invalid memory address\n\tat main.go:5"
	got := BuildAnalyzePrompt(errText)

	testboil.AssertStringContains(t, got, "```\n"+errText+"\n```")
	for _, want := range []string{"causing this error", "How to fix it", "preventive measures", "markdown"} {
		testboil.AssertStringContains(t, got, want)
	}
}

func TestBuildInstallPrompt(t *testing.T) {
	got := BuildInstallPrompt("terraform")

	testboil.AssertStringContains(t, got, "installation instructions for terraform.")
	sections := []string{"Prerequisites", "Step-by-step", "Basic configuration", "verify the installation", "troubleshooting"}
	last := -1
	for _, s := range sections {
		i := strings.Index(got, s)
		if i < 0 {
			t.Fatalf("prompt missing %q", s)
		}
		if i < last {
			t.Fatalf("section %q out of order", s)
		}
		last = i
	}
}
