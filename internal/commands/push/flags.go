package push

import (
	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/urfave/cli/v3"
)

func modelFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-ai",
			Usage: t.GetMessage("push_no_ai_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "provider",
			Usage: t.GetMessage("push_provider_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: t.GetMessage("push_model_flag_usage", 0, nil),
		},
	}
}

// applyModelFlags overrides the AI settings for this run only; nothing is saved.
func applyModelFlags(cfg *config.Config, command *cli.Command) {
	if provider := command.String("provider"); provider != "" {
		cfg.AIProvider = provider
	}
	if model := command.String("model"); model != "" {
		cfg.SetModel(model)
	}
}
