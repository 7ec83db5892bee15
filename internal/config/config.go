package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
)

type (
	Config struct {
		Language               string                      `json:"language"`
		MaxLength              int                         `json:"max_length"`
		UseConventionalCommits bool                        `json:"use_conventional_commits"`
		AIProvider             string                      `json:"ai_provider"`
		AIProviders            map[string]AIProviderConfig `json:"ai_providers"`
		DefaultBranch          string                      `json:"default_branch"`
		RemoteName             string                      `json:"remote_name"`
		RecentCommits          int                         `json:"recent_commits"`
		Hosting                HostingConfig               `json:"hosting"`
		PathFile               string                      `json:"path_file"`
	}

	AIProviderConfig struct {
		APIKey      string  `json:"api_key,omitempty"`
		Model       string  `json:"model"`
		BaseURL     string  `json:"base_url,omitempty"`
		Temperature float32 `json:"temperature"`
	}

	HostingConfig struct {
		Provider string `json:"provider"`
		Username string `json:"username,omitempty"`
		BaseURL  string `json:"base_url,omitempty"`
		UseSSH   bool   `json:"use_ssh"`
		// Token never touches disk; it comes from the environment.
		Token string `json:"-"`
	}
)

const (
	configDirName = ".commitpush"

	defaultLang          = "en"
	defaultMaxLength     = 72
	minMaxLength         = 10
	defaultBranch        = "main"
	defaultRemote        = "origin"
	defaultRecentCommits = 5
	defaultHosting       = "github"
	defaultTemperature   = 0.3
)

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Language:               defaultLang,
		MaxLength:              defaultMaxLength,
		UseConventionalCommits: true,
		AIProvider:             string(AIOllama),
		AIProviders: map[string]AIProviderConfig{
			string(AIOllama): {
				Model:       string(ModelMistral),
				BaseURL:     defaultOllamaURL,
				Temperature: defaultTemperature,
			},
			string(AIGemini): {
				Model:       string(ModelGeminiV25Flash),
				Temperature: defaultTemperature,
			},
		},
		DefaultBranch: defaultBranch,
		RemoteName:    defaultRemote,
		RecentCommits: defaultRecentCommits,
		Hosting: HostingConfig{
			Provider: defaultHosting,
			UseSSH:   true,
		},
	}
}

// LoadConfig reads the configuration from path. A directory gets
// .commitpush/config.json appended; a missing file is created with defaults.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configPath = filepath.Join(path, configDirName, "config.json")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error checking configuration file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error decoding configuration file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	config.PathFile = path

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	if config.PathFile == "" {
		return domainErrors.ErrConfigInvalid.WithContext("field", "path_file")
	}

	if err := os.MkdirAll(filepath.Dir(config.PathFile), 0755); err != nil {
		return fmt.Errorf("error creating configuration directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	invalid := func(field, reason string) error {
		return domainErrors.ErrConfigInvalid.
			WithContext("field", field).
			WithError(fmt.Errorf("%s %s", field, reason))
	}

	if config.MaxLength < minMaxLength {
		return invalid("max_length", fmt.Sprintf("must be at least %d", minMaxLength))
	}
	if config.Language == "" {
		return invalid("language", "cannot be empty")
	}
	if !isSupportedAI(config.AIProvider) {
		return invalid("ai_provider", fmt.Sprintf("%q is not supported", config.AIProvider))
	}
	if config.RecentCommits < 0 {
		return invalid("recent_commits", "cannot be negative")
	}
	switch config.Hosting.Provider {
	case "github", "gitlab":
	default:
		return invalid("hosting.provider", fmt.Sprintf("%q is not supported", config.Hosting.Provider))
	}
	return nil
}

// ActiveAI returns the selected provider and its settings.
func (c *Config) ActiveAI() (AI, AIProviderConfig) {
	ai := AI(c.AIProvider)
	providerCfg := c.AIProviders[c.AIProvider]
	if providerCfg.Model == "" {
		providerCfg.Model = string(DefaultModelForAI(ai))
	}
	if ai == AIOllama && providerCfg.BaseURL == "" {
		providerCfg.BaseURL = defaultOllamaURL
	}
	return ai, providerCfg
}

// SetModel overrides the model of the active provider.
func (c *Config) SetModel(model string) {
	if c.AIProviders == nil {
		c.AIProviders = make(map[string]AIProviderConfig)
	}
	providerCfg := c.AIProviders[c.AIProvider]
	providerCfg.Model = model
	c.AIProviders[c.AIProvider] = providerCfg
}

// RemoteURL builds the clone URL for repo owned by the configured user.
func (c *Config) RemoteURL(repo string) (string, error) {
	if c.Hosting.Username == "" || repo == "" {
		return "", domainErrors.ErrRemoteUnknown
	}

	host := "github.com"
	if c.Hosting.Provider == "gitlab" {
		host = "gitlab.com"
	}
	if c.Hosting.BaseURL != "" {
		host = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(c.Hosting.BaseURL, "https://"), "http://"), "/")
	}

	if c.Hosting.UseSSH {
		return fmt.Sprintf("git@%s:%s/%s.git", host, c.Hosting.Username, repo), nil
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, c.Hosting.Username, repo), nil
}

// Keys lists the keys accepted by Set, in display order.
func Keys() []string {
	return []string{
		"language",
		"max_length",
		"use_conventional_commits",
		"ai_provider",
		"ai_model",
		"default_branch",
		"remote_name",
		"recent_commits",
		"hosting.provider",
		"hosting.username",
		"hosting.base_url",
		"hosting.use_ssh",
	}
}

// Set assigns a single key from its string form. The result is not
// validated; SaveConfig does that.
func (c *Config) Set(key, value string) error {
	parseInt := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, domainErrors.ErrConfigInvalid.WithContext("field", key).WithError(err)
		}
		return n, nil
	}
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, domainErrors.ErrConfigInvalid.WithContext("field", key).WithError(err)
		}
		return b, nil
	}

	var err error
	switch key {
	case "language":
		c.Language = value
	case "max_length":
		c.MaxLength, err = parseInt()
	case "use_conventional_commits":
		c.UseConventionalCommits, err = parseBool()
	case "ai_provider":
		c.AIProvider = value
	case "ai_model":
		c.SetModel(value)
	case "default_branch":
		c.DefaultBranch = value
	case "remote_name":
		c.RemoteName = value
	case "recent_commits":
		c.RecentCommits, err = parseInt()
	case "hosting.provider":
		c.Hosting.Provider = value
	case "hosting.username":
		c.Hosting.Username = value
	case "hosting.base_url":
		c.Hosting.BaseURL = value
	case "hosting.use_ssh":
		c.Hosting.UseSSH, err = parseBool()
	default:
		return domainErrors.ErrConfigKeyUnknown.WithContext("key", key)
	}
	return err
}

// Get renders a single key in the form accepted by Set.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "language":
		return c.Language, nil
	case "max_length":
		return strconv.Itoa(c.MaxLength), nil
	case "use_conventional_commits":
		return strconv.FormatBool(c.UseConventionalCommits), nil
	case "ai_provider":
		return c.AIProvider, nil
	case "ai_model":
		_, providerCfg := c.ActiveAI()
		return providerCfg.Model, nil
	case "default_branch":
		return c.DefaultBranch, nil
	case "remote_name":
		return c.RemoteName, nil
	case "recent_commits":
		return strconv.Itoa(c.RecentCommits), nil
	case "hosting.provider":
		return c.Hosting.Provider, nil
	case "hosting.username":
		return c.Hosting.Username, nil
	case "hosting.base_url":
		return c.Hosting.BaseURL, nil
	case "hosting.use_ssh":
		return strconv.FormatBool(c.Hosting.UseSSH), nil
	default:
		return "", domainErrors.ErrConfigKeyUnknown.WithContext("key", key)
	}
}
