package gemini

import (
	"strings"

	"google.golang.org/genai"
)

const defaultTemperature = 0.3

// GetGenerateConfig returns the generation settings for plain text answers.
func GetGenerateConfig(temperature float32) *genai.GenerateContentConfig {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &genai.GenerateContentConfig{
		Temperature:     float32Ptr(temperature),
		MaxOutputTokens: int32(2048),
	}
}

func float32Ptr(f float32) *float32 {
	return &f
}

// formatResponse joins the text parts of every candidate, skipping thoughts.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			formattedContent.WriteString(part.Text)
		}
	}
	return formattedContent.String()
}
