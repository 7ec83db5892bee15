package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/commitpush/commitpush/internal/commands/config"
	"github.com/commitpush/commitpush/internal/commands/deploy"
	"github.com/commitpush/commitpush/internal/commands/hooks"
	"github.com/commitpush/commitpush/internal/commands/push"
	"github.com/commitpush/commitpush/internal/commands/registry"
	cfg "github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/di"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/runner"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/commitpush/commitpush/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(err)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(err, translations)
		stop()
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	// the project's .env wins over the one in the config directory
	if err := cfg.LoadEnv(".env", filepath.Join(homeDir, ".commitpush", ".env")); err != nil {
		return nil, nil, fmt.Errorf("error loading .env: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the working directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}
	cfgApp.ApplyEnv()

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, err
	}
	if err := selectLanguage(context.Background(), translations, cfgApp.Language); err != nil {
		return nil, nil, err
	}

	container := di.NewContainer(cfgApp, workDir, runner.NewExecRunner(workDir))

	pusherProvider := func(ctx context.Context) (push.Pusher, error) {
		return container.PushService(ctx), nil
	}
	deployerProvider := func(ctx context.Context) (deploy.Deployer, error) {
		svc, err := container.DeployService(ctx)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
	installerProvider := func(ctx context.Context) (hooks.Installer, error) {
		installer, err := container.HookInstaller(ctx)
		if err != nil {
			return nil, err
		}
		return installer, nil
	}

	pushFactory := push.NewPushCommandFactory(pusherProvider)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	for _, entry := range []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"push", pushFactory},
		{"suggest", push.NewSuggestCommandFactory(pusherProvider)},
		{"deploy", deploy.NewDeployCommandFactory(deployerProvider, workDir)},
		{"hooks", hooks.NewHooksCommandFactory(installerProvider)},
		{"config", config.NewConfigCommandFactory()},
	} {
		if err := registerCommand.Register(entry.name, entry.factory); err != nil {
			return nil, nil, err
		}
	}

	return &cli.Command{
		Name:                  "commitpush",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("flag_lang_usage", 0, nil),
			},
		}, pushFactory.RootFlags(translations)...),
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger.Initialize(command.Bool("debug"), command.Bool("verbose"))
			if lang := command.String("lang"); lang != "" {
				if err := translations.SetLanguage(lang); err != nil {
					logger.Warn(ctx, "language not available, keeping the configured one", "lang", lang)
				}
			}
			logger.Debug(ctx, "configuration loaded",
				"path", cfgApp.PathFile,
				"ai_provider", cfgApp.AIProvider,
				"hosting", cfgApp.Hosting.Provider,
				"dir", workDir)
			return ctx, nil
		},
		// no sub-command: commit and push, like `commitpush push`
		Action: pushFactory.Action(cfgApp, translations),
	}, translations, nil
}

// selectLanguage falls back to English when lang has no catalog.
func selectLanguage(ctx context.Context, translations *i18n.Translations, lang string) error {
	err := translations.SetLanguage(lang)
	if err == nil {
		return nil
	}
	logger.Warn(ctx, "configured language not available, using en", "lang", lang, "error", err)
	return translations.SetLanguage("en")
}
