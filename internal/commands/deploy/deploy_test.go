package deploy

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/commitpush/commitpush/internal/config"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ui"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deployEnv struct {
	cfg          *config.Config
	translations *i18n.Translations
	dir          string
	out          *bytes.Buffer
}

func setupDeployTest(t *testing.T) deployEnv {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "my-project")
	require.NoError(t, os.MkdirAll(dir, 0755))

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	prevOut, prevNoColor := ui.Out, color.NoColor
	ui.Out, color.NoColor = out, true
	t.Cleanup(func() {
		ui.Out, color.NoColor = prevOut, prevNoColor
	})

	return deployEnv{cfg: config.Default(), translations: translations, dir: dir, out: out}
}

func (e deployEnv) command(d Deployer) func(ctx context.Context, args ...string) error {
	provider := func(context.Context) (Deployer, error) { return d, nil }
	cmd := NewDeployCommandFactory(provider, e.dir).CreateCommand(e.translations, e.cfg)
	return func(ctx context.Context, args ...string) error {
		return cmd.Run(ctx, append([]string{"deploy"}, args...))
	}
}

var createdRepo = &models.RemoteRepository{
	Name:     "demo",
	FullName: "octo/demo",
	SSHURL:   "git@github.com:octo/demo.git",
	HTTPSURL: "https://github.com/octo/demo.git",
	WebURL:   "https://github.com/octo/demo",
}

func TestDeployCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("flags override the manifest", func(t *testing.T) {
		env := setupDeployTest(t)
		manifest := filepath.Join(env.dir, config.ManifestFile)
		require.NoError(t, os.WriteFile(manifest, []byte("name: from-manifest\ndescription: A demo\ntopics: [old]\n"), 0644))

		deployer := new(MockDeployer)
		deployer.On("Deploy", mock.Anything, models.DeployOptions{
			Metadata: models.RepositoryMetadata{
				Name:        "demo",
				Description: "A demo",
				Private:     true,
				Topics:      []string{"go", "cli"},
			},
			GenerateReadme: true,
			Branch:         "main",
			UseSSH:         true,
		}).Return(&models.DeployResult{
			Repository: createdRepo,
			ReadmePath: filepath.Join(env.dir, "README.md"),
			Push:       &models.PushResult{Branch: "main", Pushed: true, Message: models.CommitMessage{Text: "Initial commit", Source: models.SourceUser}},
		}, nil)

		// act
		err := env.command(deployer)(ctx, "--name", "demo", "--private", "--topics", "Go, CLI", "--readme")

		// assert
		require.NoError(t, err)
		deployer.AssertExpectations(t)
		assert.Contains(t, env.out.String(), "Repository octo/demo created")
		assert.Contains(t, env.out.String(), "https://github.com/octo/demo")
		assert.Contains(t, env.out.String(), "README generated at")
		assert.Contains(t, env.out.String(), "Changes pushed to main")

		saved, err := config.LoadManifest(manifest)
		require.NoError(t, err)
		assert.Equal(t, "demo", saved.Name)
		assert.Equal(t, []string{"go", "cli"}, saved.Topics)
	})

	t.Run("directory name is the last resort", func(t *testing.T) {
		env := setupDeployTest(t)
		deployer := new(MockDeployer)
		deployer.On("Deploy", mock.Anything, mock.MatchedBy(func(opts models.DeployOptions) bool {
			return opts.Metadata.Name == "my-project" && !opts.UseSSH && opts.Message == "first"
		})).Return(&models.DeployResult{Repository: createdRepo}, nil)

		err := env.command(deployer)(ctx, "--ssh=false", "-m", "first")

		require.NoError(t, err)
		deployer.AssertExpectations(t)
	})

	t.Run("push failure after creation still reports the repository", func(t *testing.T) {
		env := setupDeployTest(t)
		deployer := new(MockDeployer)
		pushErr := domainErrors.ErrPush.WithError(errors.New("exit status 128"))
		deployer.On("Deploy", mock.Anything, mock.Anything).Return(&models.DeployResult{Repository: createdRepo}, pushErr)

		err := env.command(deployer)(ctx, "--name", "demo")

		assert.True(t, errors.Is(err, domainErrors.ErrPush))
		assert.Contains(t, env.out.String(), "Repository octo/demo created")
	})

	t.Run("creation failure", func(t *testing.T) {
		env := setupDeployTest(t)
		deployer := new(MockDeployer)
		deployer.On("Deploy", mock.Anything, mock.Anything).Return(nil, domainErrors.ErrRepositoryExists)

		err := env.command(deployer)(ctx, "--name", "demo")

		assert.True(t, errors.Is(err, domainErrors.ErrRepositoryExists))
		assert.NotContains(t, env.out.String(), "created")
		_, statErr := os.Stat(filepath.Join(env.dir, config.ManifestFile))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("malformed manifest stops early", func(t *testing.T) {
		env := setupDeployTest(t)
		require.NoError(t, os.WriteFile(filepath.Join(env.dir, config.ManifestFile), []byte("name: [unclosed"), 0644))
		deployer := new(MockDeployer)

		err := env.command(deployer)(ctx)

		assert.True(t, errors.Is(err, domainErrors.ErrManifestInvalid))
		deployer.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything)
	})
}

func TestSplitTopics(t *testing.T) {
	assert.Equal(t, []string{"go", "cli", "git"}, splitTopics(" Go ,CLI,, git "))
	assert.Nil(t, splitTopics(""))
}
