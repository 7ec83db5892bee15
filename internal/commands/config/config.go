package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetCommand(t, cfg),
		},
	}
}

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("config.header", 0, nil))
			ui.PrintKeyValue(t.GetMessage("config.path_label", 0, nil), cfg.PathFile)

			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if value == "" {
					value = t.GetMessage("config.not_set", 0, nil)
				}
				ui.PrintKeyValue(key, value)
			}

			ui.PrintKeyValue("hosting.token", secretState(t, cfg.Hosting.Token))
			_, providerCfg := cfg.ActiveAI()
			if cfg.AIProvider == string(config.AIGemini) {
				ui.PrintKeyValue("ai_api_key", secretState(t, providerCfg.APIKey))
			}
			return nil
		},
	}
}

// newSetCommand edits the file on disk, not the in-memory configuration,
// so secrets picked up from the environment are never written back.
func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: t.GetMessage("config_set_args_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if command.Args().Len() < 2 {
				return errors.New(t.GetMessage("config.set_error_args", 0, nil) + "\n" +
					t.GetMessage("config.keys_label", 0, nil) + ": " + strings.Join(config.Keys(), ", "))
			}

			key := strings.ToLower(command.Args().Get(0))
			value := command.Args().Get(1)

			stored, err := config.LoadConfig(cfg.PathFile)
			if err != nil {
				return err
			}
			if err := stored.Set(key, value); err != nil {
				return err
			}
			if err := config.SaveConfig(stored); err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return fmt.Errorf("error applying %s: %w", key, err)
			}

			logger.Info(ctx, "configuration updated", "key", key, "path", stored.PathFile)
			ui.PrintSuccess(ui.Out, t.GetMessage("config.saved", 0, map[string]interface{}{
				"Key":   key,
				"Value": value,
			}))
			return nil
		},
	}
}

func secretState(t *i18n.Translations, secret string) string {
	if secret == "" {
		return t.GetMessage("config.not_set", 0, nil)
	}
	return t.GetMessage("config.from_env", 0, nil)
}
