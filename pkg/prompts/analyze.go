package prompts

import (
	"fmt"
)

func BuildAnalyzePrompt(errorText string) string {
	return fmt.Sprintf("You are a DevOps AI assistant. Analyze this error and provide a solution:\n\n```\n%s\n```\n\n"+
		`Please explain:
1. What is causing this error
2. How to fix it
3. Any preventive measures for the future

Format your response in markdown with clear steps.
`, errorText)
}
