package prompts

import (
	"fmt"
)

func BuildInstallPrompt(toolName string) string {
	return fmt.Sprintf(`You are a DevOps AI assistant. Provide detailed installation instructions for %s.

Include:
1. Prerequisites
2. Step-by-step installation process
3. Basic configuration
4. How to verify the installation
5. Common issues and troubleshooting

Format your response in markdown with clear steps that can be executed in a terminal.
`, toolName)
}
