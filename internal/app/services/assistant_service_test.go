package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantService_Ask(t *testing.T) {
	assistant := NewAssistantService()

	assert.Empty(t, assistant.Ask("   "))
	assert.Contains(t, assistant.Ask("How do I UPLOAD a file?"), "Upload new file")
	assert.Contains(t, assistant.Ask("where does my download go"), "simulates downloading")
	assert.Equal(t, "Try searching or ask about upload/download.", assistant.Ask("what is the meaning of life"))
}
