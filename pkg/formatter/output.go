package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/helmcode/devops-agent/pkg/config"
	"github.com/helmcode/devops-agent/pkg/model"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const wrapWidth = 80

// Formats accepted by --output.
const (
	FormatHuman = "human"
	FormatRaw   = "raw"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormat reports whether format is one of the known output formats.
func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatRaw, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// DisplayResponse writes a chat reply in the requested format.
func DisplayResponse(w io.Writer, resp *model.Response, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, resp)
	case FormatYAML:
		return displayYAML(w, resp)
	case FormatRaw:
		_, err := fmt.Fprintln(w, resp.Content)
		return err
	case FormatHuman:
		fallthrough
	default:
		_, err := fmt.Fprintln(w, renderMarkdown(w, resp.Content))
		return err
	}
}

// DisplayError writes a failed request inline, the way a reply would appear.
func DisplayError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "Error: %v\n", err)
}

// DisplayConfig writes the stored configuration with the API key masked.
func DisplayConfig(w io.Writer, path string, cfg *config.Config, format string) error {
	masked := *cfg
	masked.APIKey = cfg.MaskedKey()

	switch format {
	case FormatJSON:
		return displayJSON(w, masked)
	case FormatYAML:
		return displayYAML(w, masked)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(w, "DevOps AI Agent configuration")
	fmt.Fprintf(w, "Path:    %s\n", path)
	fmt.Fprintf(w, "API key: %s\n", masked.APIKey)
	fmt.Fprintf(w, "Model:   %s\n", masked.Model)
	mon := masked.ErrorMonitoring
	fmt.Fprintf(w, "Error monitoring: enabled=%t scan_interval=%ds\n", mon.Enabled, mon.ScanInterval)
	if len(mon.LogPatterns) > 0 {
		fmt.Fprintf(w, "Log patterns: %s\n", strings.Join(mon.LogPatterns, ", "))
	}
	return nil
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

// renderMarkdown styles markdown for the terminal. Output that is not a terminal
// and any renderer failure get the text unchanged.
func renderMarkdown(w io.Writer, text string) string {
	if !isTerminal(w) {
		return text
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrapWidth))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
