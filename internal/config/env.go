package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvGitHubToken  = "GITHUB_TOKEN"
	EnvGitLabToken  = "GITLAB_TOKEN"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOllamaHost   = "OLLAMA_HOST"
)

// LoadEnv reads dotenv files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv copies secrets and endpoints from the environment into c.
// Values stored in the config file win for everything but tokens.
func (c *Config) ApplyEnv() {
	if c.AIProviders == nil {
		c.AIProviders = make(map[string]AIProviderConfig)
	}

	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		gemini := c.AIProviders[string(AIGemini)]
		if gemini.APIKey == "" {
			gemini.APIKey = key
			c.AIProviders[string(AIGemini)] = gemini
		}
	}

	if host := os.Getenv(EnvOllamaHost); host != "" {
		ollama := c.AIProviders[string(AIOllama)]
		if ollama.BaseURL == "" || ollama.BaseURL == defaultOllamaURL {
			ollama.BaseURL = host
			c.AIProviders[string(AIOllama)] = ollama
		}
	}

	switch c.Hosting.Provider {
	case "gitlab":
		c.Hosting.Token = os.Getenv(EnvGitLabToken)
	default:
		c.Hosting.Token = os.Getenv(EnvGitHubToken)
	}
}
