package llm

import _ "embed"

//go:embed prompts/extract_id_v1.txt
var extractIDPromptV1 string

// ExtractIDPrompt returns the system prompt describing the target JSON schema.
func ExtractIDPrompt() string {
	return extractIDPromptV1
}
