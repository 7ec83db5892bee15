package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestGetGenerateConfig(t *testing.T) {
	t.Run("default temperature", func(t *testing.T) {
		cfg := GetGenerateConfig(0)
		assert.NotNil(t, cfg)
		assert.Equal(t, float32(0.3), *cfg.Temperature)
		assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
		assert.Empty(t, cfg.ResponseMIMEType)
	})

	t.Run("configured temperature", func(t *testing.T) {
		cfg := GetGenerateConfig(0.7)
		assert.Equal(t, float32(0.7), *cfg.Temperature)
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Empty(t, formatResponse(nil))
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Empty(t, formatResponse(&genai.GenerateContentResponse{}))
	})

	t.Run("joins text parts and skips thoughts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking about it", Thought: true},
					{Text: "feat(app): "},
					{Text: "add greeting"},
				}}},
				{Content: nil},
			},
		}
		assert.Equal(t, "feat(app): add greeting", formatResponse(resp))
	})
}
