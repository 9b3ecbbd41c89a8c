package config

import (
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Config is the on-disk configuration of the agent.
type Config struct {
	APIKey          string           `json:"api_key" yaml:"api_key"`
	Model           string           `json:"model" yaml:"model"`
	ErrorMonitoring MonitoringConfig `json:"error_monitoring" yaml:"error_monitoring"`
}

// MonitoringConfig describes the log scanning settings. Scanning itself is not
// implemented; the block is only reported by the monitor command.
type MonitoringConfig struct {
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	ScanInterval int      `json:"scan_interval" yaml:"scan_interval"`
	LogPatterns  []string `json:"log_patterns" yaml:"log_patterns"`
}

const DefaultScanInterval = 300

// DefaultMonitoring returns the monitoring block written by every setup run.
func DefaultMonitoring() MonitoringConfig {
	return MonitoringConfig{
		Enabled:      true,
		ScanInterval: DefaultScanInterval,
		LogPatterns: []string{
			`error:`,
			`exception`,
			`failure`,
			`fatal`,
			`critical`,
		},
	}
}

// Complete reports whether both the API key and the model are set.
func (c *Config) Complete() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.Model) != ""
}

// Validate checks the whole configuration and aggregates every problem found.
func (c *Config) Validate() error {
	var errs field.ErrorList

	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, field.Required(field.NewPath("api_key"), "run 'devops-agent setup'"))
	}
	if strings.TrimSpace(c.Model) == "" {
		errs = append(errs, field.Required(field.NewPath("model"), "run 'devops-agent setup'"))
	}

	mon := field.NewPath("error_monitoring")
	if c.ErrorMonitoring.Enabled && c.ErrorMonitoring.ScanInterval <= 0 {
		errs = append(errs, field.Invalid(mon.Child("scan_interval"), c.ErrorMonitoring.ScanInterval, "must be a positive number of seconds"))
	}
	for i, p := range c.ErrorMonitoring.LogPatterns {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, field.Invalid(mon.Child("log_patterns").Index(i), p, err.Error()))
		}
	}

	return errs.ToAggregate()
}

// MaskedKey hides all but the last four characters of the API key.
func (c *Config) MaskedKey() string {
	k := c.APIKey
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}
	return strings.Repeat("*", len(k)-4) + k[len(k)-4:]
}
