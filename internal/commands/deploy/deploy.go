package deploy

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/commitpush/commitpush/internal/commands/completion_helper"
	"github.com/commitpush/commitpush/internal/commands/push"
	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/urfave/cli/v3"
)

type Deployer interface {
	Deploy(ctx context.Context, opts models.DeployOptions) (*models.DeployResult, error)
}

type DeployerProvider func(ctx context.Context) (Deployer, error)

type DeployCommandFactory struct {
	provider DeployerProvider
	dir      string
}

// NewDeployCommandFactory deploys the project in dir; its base name is the
// repository name of last resort.
func NewDeployCommandFactory(provider DeployerProvider, dir string) *DeployCommandFactory {
	return &DeployCommandFactory{provider: provider, dir: dir}
}

func (f *DeployCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "deploy",
		Aliases:       []string{"d"},
		Usage:         t.GetMessage("deploy_command_usage", 0, nil),
		Flags:         f.createFlags(t, cfg),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *DeployCommandFactory) createFlags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("deploy_name_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: t.GetMessage("deploy_description_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "private",
			Usage: t.GetMessage("deploy_private_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "topics",
			Usage: t.GetMessage("deploy_topics_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "ssh",
			Value: cfg.Hosting.UseSSH,
			Usage: t.GetMessage("deploy_ssh_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "readme",
			Usage: t.GetMessage("deploy_readme_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   t.GetMessage("deploy_message_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "manifest",
			Value: config.ManifestFile,
			Usage: t.GetMessage("deploy_manifest_flag_usage", 0, nil),
		},
	}
}

func (f *DeployCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		manifestPath := command.String("manifest")
		if !filepath.IsAbs(manifestPath) {
			manifestPath = filepath.Join(f.dir, manifestPath)
		}

		meta, err := config.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		meta = f.mergeFlags(meta, command)

		opts := models.DeployOptions{
			Metadata:       meta,
			GenerateReadme: command.Bool("readme"),
			Message:        command.String("message"),
			Branch:         cfg.DefaultBranch,
			UseSSH:         command.Bool("ssh"),
		}

		logger.Info(ctx, "executing deploy command",
			"name", meta.Name,
			"private", meta.Private,
			"topics", len(meta.Topics),
			"readme", opts.GenerateReadme,
			"host", cfg.Hosting.Provider)

		ui.PrintSectionBanner(t.GetMessage("deploy.banner", 0, nil))

		svc, err := f.provider(ctx)
		if err != nil {
			return err
		}

		spinner := ui.NewSmartSpinner(t.GetMessage("deploy.creating", 0, nil))
		spinner.Start()
		result, err := svc.Deploy(ctx, opts)
		spinner.Stop()

		if result != nil && result.Repository != nil {
			ui.PrintSuccess(ui.Out, t.GetMessage("deploy.created", 0, map[string]interface{}{"Name": result.Repository.FullName}))
			ui.PrintKeyValue(t.GetMessage("deploy.url_label", 0, nil), result.Repository.WebURL)
			if err := config.SaveManifest(manifestPath, meta); err != nil {
				logger.Warn(ctx, "could not save repository manifest", "path", manifestPath, "error", err)
			}
		}
		if err != nil {
			return err
		}

		if result.ReadmePath != "" {
			ui.PrintInfo(t.GetMessage("deploy.readme_written", 0, map[string]interface{}{"Path": result.ReadmePath}))
		}
		if result.Push != nil {
			push.PrintResult(t, result.Push)
		}
		return nil
	}
}

// mergeFlags lets explicit flags win over the manifest; the directory name
// is used when neither gives a name.
func (f *DeployCommandFactory) mergeFlags(meta models.RepositoryMetadata, command *cli.Command) models.RepositoryMetadata {
	if name := strings.TrimSpace(command.String("name")); name != "" {
		meta.Name = name
	}
	if meta.Name == "" {
		meta.Name = filepath.Base(f.dir)
	}
	if command.IsSet("description") {
		meta.Description = command.String("description")
	}
	if command.IsSet("private") {
		meta.Private = command.Bool("private")
	}
	if command.IsSet("topics") {
		meta.Topics = splitTopics(command.String("topics"))
	}
	return meta
}

func splitTopics(raw string) []string {
	var topics []string
	for _, topic := range strings.Split(raw, ",") {
		if topic = strings.ToLower(strings.TrimSpace(topic)); topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}
