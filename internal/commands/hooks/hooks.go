package hooks

import (
	"context"

	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/urfave/cli/v3"
)

type Installer interface {
	Install(ctx context.Context, force bool) (string, error)
}

type InstallerProvider func(ctx context.Context) (Installer, error)

type HooksCommandFactory struct {
	provider InstallerProvider
}

func NewHooksCommandFactory(provider InstallerProvider) *HooksCommandFactory {
	return &HooksCommandFactory{provider: provider}
}

func (f *HooksCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hooks",
		Usage: t.GetMessage("hooks_command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "install",
				Usage: t.GetMessage("hooks_install_usage", 0, nil),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   t.GetMessage("hooks_force_flag_usage", 0, nil),
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					force := command.Bool("force")
					logger.Info(ctx, "executing hooks install", "force", force)

					installer, err := f.provider(ctx)
					if err != nil {
						return err
					}

					path, err := installer.Install(ctx, force)
					if err != nil {
						return err
					}

					ui.PrintSuccess(ui.Out, t.GetMessage("hooks.installed", 0, map[string]interface{}{"Path": path}))
					return nil
				},
			},
		},
	}
}
