package config

type AI string

const (
	AIOllama AI = "ollama"
	AIGemini AI = "gemini"
	AINone   AI = "none"
)

type Model string

const (
	ModelMistral Model = "mistral"
	ModelLlama32 Model = "llama3.2"
	ModelQwen25  Model = "qwen2.5-coder"
	ModelGemma3  Model = "gemma3"

	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
)

const defaultOllamaURL = "http://localhost:11434"

func SupportedAIs() []AI {
	return []AI{
		AIOllama,
		AIGemini,
		AINone,
	}
}

// ModelsForAI lists known models. Ollama accepts any locally pulled model,
// so its list is only a suggestion.
func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIOllama:
		return []Model{
			ModelMistral,
			ModelLlama32,
			ModelQwen25,
			ModelGemma3,
		}
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25FlashLite,
			ModelGeminiV25Pro,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

func isSupportedAI(name string) bool {
	for _, ai := range SupportedAIs() {
		if string(ai) == name {
			return true
		}
	}
	return false
}
