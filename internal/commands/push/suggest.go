package push

import (
	"context"

	"github.com/commitpush/commitpush/internal/commands/completion_helper"
	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/urfave/cli/v3"
)

type SuggestCommandFactory struct {
	provider PusherProvider
}

func NewSuggestCommandFactory(provider PusherProvider) *SuggestCommandFactory {
	return &SuggestCommandFactory{provider: provider}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "suggest",
		Aliases:       []string{"s"},
		Usage:         t.GetMessage("suggest_command_usage", 0, nil),
		Flags:         modelFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			applyModelFlags(cfg, command)
			noAI := command.Bool("no-ai")

			logger.Info(ctx, "executing suggest command", "no_ai", noAI, "provider", cfg.AIProvider)

			svc, err := f.provider(ctx)
			if err != nil {
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("push.analyzing", 0, nil))
			spinner.Start()
			changes, msg, err := svc.Suggest(ctx, noAI)
			spinner.Stop()
			if err != nil {
				return err
			}

			if !changes.HasChanges() {
				ui.PrintInfo(t.GetMessage("suggest.no_changes", 0, nil))
				return nil
			}

			printChanges(t, changes)
			ui.PrintSectionBanner(t.GetMessage("suggest.message_header", 0, nil))
			ui.PrintKeyValue(t.GetMessage("push.message_label", 0, nil), msg.Text)
			ui.PrintKeyValue(t.GetMessage("push.source_label", 0, nil), string(msg.Source))
			return nil
		},
	}
}
