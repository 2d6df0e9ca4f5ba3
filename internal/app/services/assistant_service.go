package services

import "strings"

// AssistantService answers help questions with canned responses. It keeps
// no state and never touches the repositories.
type AssistantService struct{}

// NewAssistantService creates a new AssistantService
func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

// Ask matches the question against known topics. An empty question yields
// an empty answer.
func (s *AssistantService) Ask(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	switch {
	case q == "":
		return ""
	case strings.Contains(q, "upload"):
		return `To upload: Click "Upload new file", fill details and press Upload.`
	case strings.Contains(q, "download"):
		return "Click View → Download; the demo simulates downloading."
	default:
		return "Try searching or ask about upload/download."
	}
}
