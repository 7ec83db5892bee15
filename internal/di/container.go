package di

import (
	"context"
	"path/filepath"

	"github.com/commitpush/commitpush/internal/commitmsg"
	"github.com/commitpush/commitpush/internal/config"
	"github.com/commitpush/commitpush/internal/git"
	"github.com/commitpush/commitpush/internal/hooks"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/commitpush/commitpush/internal/providers"
	"github.com/commitpush/commitpush/internal/readme"
	"github.com/commitpush/commitpush/internal/runner"
	"github.com/commitpush/commitpush/internal/services"
)

// Container builds the services a command needs from the configuration.
// Services are created on demand because flags such as --provider or
// --model change the configuration after the container exists.
type Container struct {
	config *config.Config
	dir    string
	runner runner.Runner

	// languageModel overrides the configured provider, mainly for tests.
	languageModel ports.LanguageModel
}

// NewContainer works on the repository in dir with commands executed by r.
func NewContainer(cfg *config.Config, dir string, r runner.Runner) *Container {
	return &Container{
		config: cfg,
		dir:    dir,
		runner: r,
	}
}

// SetLanguageModel forces the model returned by LanguageModel.
func (c *Container) SetLanguageModel(model ports.LanguageModel) {
	c.languageModel = model
}

func (c *Container) GitService() *git.GitService {
	return git.NewGitService(c.runner)
}

func (c *Container) Collector() *git.Collector {
	return git.NewCollector(c.runner)
}

// LanguageModel returns the configured model, or nil when AI is disabled or
// the provider cannot be built. A nil model means every message comes from
// the rule-based fallback.
func (c *Container) LanguageModel(ctx context.Context) ports.LanguageModel {
	if c.languageModel != nil {
		return c.languageModel
	}

	model, err := providers.NewLanguageModel(ctx, c.config)
	if err != nil {
		logger.Warn(ctx, "language model unavailable, using rule-based messages",
			"provider", c.config.AIProvider,
			"error", err)
		return nil
	}
	return model
}

func (c *Container) CommitService(ctx context.Context) *services.CommitService {
	classifier := commitmsg.NewClassifier()
	normalizer := commitmsg.NewNormalizer(c.config.MaxLength, c.config.UseConventionalCommits)
	fallback := commitmsg.NewFallbackSynthesizer(classifier)

	var primary commitmsg.Synthesizer
	if model := c.LanguageModel(ctx); model != nil {
		primary = commitmsg.NewGenerativeSynthesizer(model, classifier, c.config.MaxLength)
	}

	return services.NewCommitService(primary, fallback, normalizer)
}

func (c *Container) PushService(ctx context.Context) *services.PushService {
	remoteURL, _ := c.config.RemoteURL(filepath.Base(c.dir))

	return services.NewPushService(
		c.GitService(),
		c.Collector(),
		c.CommitService(ctx),
		c.QualityChecker(),
		services.PushConfig{
			Branch:        c.config.DefaultBranch,
			Remote:        c.config.RemoteName,
			RemoteURL:     remoteURL,
			RecentCommits: c.config.RecentCommits,
		},
	)
}

func (c *Container) QualityChecker() *hooks.QualityChecker {
	return hooks.NewQualityChecker(c.runner, hooks.DefaultSyntaxChecks)
}

// DeployService fails when the hosting client cannot be built, typically
// because the token is missing.
func (c *Container) DeployService(ctx context.Context) (*services.DeployService, error) {
	host, err := providers.NewRepositoryHost(c.config)
	if err != nil {
		return nil, err
	}

	var writer ports.ReadmeWriter
	if model := c.LanguageModel(ctx); model != nil {
		writer = readme.NewGenerator(model, c.dir)
	}

	return services.NewDeployService(host, writer, c.PushService(ctx)), nil
}

func (c *Container) HookInstaller(ctx context.Context) (*hooks.Installer, error) {
	gitDir, err := c.GitService().GitDir(ctx)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(c.dir, gitDir)
	}
	return hooks.NewInstaller(gitDir), nil
}
