package push

import (
	"context"
	"fmt"
	"time"

	"github.com/commitpush/commitpush/internal/commands/completion_helper"
	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/urfave/cli/v3"
)

// Pusher is the part of the push service the commands use.
type Pusher interface {
	Run(ctx context.Context, opts models.PushOptions) (*models.PushResult, error)
	Suggest(ctx context.Context, noAI bool) (models.ChangeSet, models.CommitMessage, error)
}

// PusherProvider builds the service after flags have been applied to the
// configuration.
type PusherProvider func(ctx context.Context) (Pusher, error)

type PushCommandFactory struct {
	provider PusherProvider
}

func NewPushCommandFactory(provider PusherProvider) *PushCommandFactory {
	return &PushCommandFactory{provider: provider}
}

func (f *PushCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "push",
		Aliases:       []string{"p"},
		Usage:         t.GetMessage("push_command_usage", 0, nil),
		Description:   t.GetMessage("push_command_description", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *PushCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: t.GetMessage("push_dry_run_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   t.GetMessage("push_message_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("push_branch_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "skip-checks",
			Usage: t.GetMessage("push_skip_checks_flag_usage", 0, nil),
		},
	}
	return append(flags, modelFlags(t)...)
}

// RootFlags are the push flags for the root command. They are local so the
// other sub-commands do not inherit them.
func (f *PushCommandFactory) RootFlags(t *i18n.Translations) []cli.Flag {
	flags := f.createFlags(t)
	for _, flag := range flags {
		switch fl := flag.(type) {
		case *cli.BoolFlag:
			fl.Local = true
		case *cli.StringFlag:
			fl.Local = true
		}
	}
	return flags
}

// Action returns the push action on its own, so the root command can run it
// when no sub-command is given.
func (f *PushCommandFactory) Action(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return f.createAction(cfg, t)
}

func (f *PushCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		applyModelFlags(cfg, command)

		opts := models.PushOptions{
			DryRun:     command.Bool("dry-run"),
			NoAI:       command.Bool("no-ai"),
			Message:    command.String("message"),
			Branch:     command.String("branch"),
			SkipChecks: command.Bool("skip-checks"),
		}

		logger.Info(ctx, "executing push command",
			"dry_run", opts.DryRun,
			"no_ai", opts.NoAI,
			"explicit_message", opts.Message != "",
			"provider", cfg.AIProvider)

		ui.PrintSectionBanner(t.GetMessage("push.banner", 0, nil))

		svc, err := f.provider(ctx)
		if err != nil {
			return err
		}

		spinner := ui.NewSmartSpinner(t.GetMessage("push.analyzing", 0, nil))
		spinner.Start()
		start := time.Now()

		result, err := svc.Run(ctx, opts)
		spinner.Stop()
		if err != nil {
			logger.Error(ctx, "push failed", err, "duration_ms", time.Since(start).Milliseconds())
			return err
		}

		PrintResult(t, result)
		return nil
	}
}

// PrintResult renders the outcome of a push run.
func PrintResult(t *i18n.Translations, result *models.PushResult) {
	if result.Initialized {
		ui.PrintInfo(t.GetMessage("push.initialized", 0, nil))
	}
	if result.UpToDate {
		ui.PrintSuccess(ui.Out, t.GetMessage("push.up_to_date", 0, nil))
		return
	}

	printChanges(t, result.Changes)

	if result.DryRun {
		ui.PrintWarning(t.GetMessage("push.dry_run", 0, nil))
		return
	}

	ui.PrintKeyValue(t.GetMessage("push.message_label", 0, nil), result.Message.Text)
	ui.PrintKeyValue(t.GetMessage("push.source_label", 0, nil), string(result.Message.Source))
	ui.PrintKeyValue(t.GetMessage("push.branch_label", 0, nil), result.Branch)
	if result.RemoteURL != "" {
		ui.PrintKeyValue(t.GetMessage("push.remote_label", 0, nil), result.RemoteURL)
	}
	if result.RemoteAdded {
		ui.PrintInfo(t.GetMessage("push.remote_added", 0, map[string]interface{}{"Remote": result.RemoteURL}))
	}
	if result.Pushed {
		ui.PrintSuccess(ui.Out, t.GetMessage("push.pushed", 0, map[string]interface{}{"Branch": result.Branch}))
	}
}

func printChanges(t *i18n.Translations, changes models.ChangeSet) {
	count := len(changes.Files())
	ui.ShowFilesTree(changes, t.GetMessage("push.files_header", count, map[string]interface{}{"Count": count}))
	if changes.Delta.Files > 0 {
		ui.PrintKeyValue(t.GetMessage("push.lines_label", 0, nil),
			fmt.Sprintf("+%d -%d", changes.Delta.Additions, changes.Delta.Deletions))
	}
}
