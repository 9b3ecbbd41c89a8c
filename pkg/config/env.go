package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"k8s.io/client-go/util/homedir"
)

const (
	// EnvConfigPath overrides the location of the configuration file.
	EnvConfigPath = "DEVOPS_AGENT_CONFIG"
	// EnvBaseURL overrides the chat API base URL.
	EnvBaseURL = "DEVOPS_AGENT_BASE_URL"

	DefaultBaseURL = "https://openrouter.ai/api/v1"

	dirName  = ".devops-ai-agent"
	fileName = "config.json"
)

// LoadDotEnv loads a .env file from the working directory if there is one.
// Variables already present in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// DefaultPath returns the configuration file path, honouring DEVOPS_AGENT_CONFIG.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	home := homedir.HomeDir()
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, dirName, fileName)
}

// BaseURL returns the API base URL, honouring DEVOPS_AGENT_BASE_URL.
func BaseURL() string {
	if u := strings.TrimSpace(os.Getenv(EnvBaseURL)); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	return DefaultBaseURL
}
