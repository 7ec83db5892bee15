package di

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/commitpush/commitpush/internal/config"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/commitpush/commitpush/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContainer_LanguageModel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled AI gives a nil model", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProvider = string(config.AINone)

		model := NewContainer(cfg, t.TempDir(), new(runner.MockRunner)).LanguageModel(ctx)

		assert.True(t, model == nil)
	})

	t.Run("provider errors degrade to a nil model", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProvider = string(config.AIGemini)

		model := NewContainer(cfg, t.TempDir(), new(runner.MockRunner)).LanguageModel(ctx)

		assert.True(t, model == nil)
	})

	t.Run("override wins", func(t *testing.T) {
		fake := new(ports.MockLanguageModel)
		c := NewContainer(config.Default(), t.TempDir(), new(runner.MockRunner))
		c.SetLanguageModel(fake)

		assert.Same(t, fake, c.LanguageModel(ctx))
	})
}

func TestContainer_CommitService(t *testing.T) {
	ctx := context.Background()
	changes := models.ChangeSet{Modified: []string{"src/app.go"}}

	t.Run("uses the language model when available", func(t *testing.T) {
		fake := new(ports.MockLanguageModel)
		fake.On("Name").Return("fake/model").Maybe()
		fake.On("Complete", mock.Anything, mock.AnythingOfType("string")).
			Return("feat(app): add request validation", nil)

		c := NewContainer(config.Default(), t.TempDir(), new(runner.MockRunner))
		c.SetLanguageModel(fake)

		msg, err := c.CommitService(ctx).Generate(ctx, changes, nil)

		require.NoError(t, err)
		assert.Equal(t, models.CommitMessage{Text: "feat(app): add request validation", Source: models.SourceAI}, msg)
		fake.AssertExpectations(t)
	})

	t.Run("falls back without a model", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProvider = string(config.AINone)

		msg, err := NewContainer(cfg, t.TempDir(), new(runner.MockRunner)).CommitService(ctx).Generate(ctx, changes, nil)

		require.NoError(t, err)
		assert.Equal(t, models.SourceFallback, msg.Source)
		assert.Equal(t, "feat(app): update 1 file", msg.Text)
	})
}

func TestContainer_DeployService(t *testing.T) {
	t.Run("missing token is surfaced", func(t *testing.T) {
		svc, err := NewContainer(config.Default(), t.TempDir(), new(runner.MockRunner)).DeployService(context.Background())

		assert.Nil(t, svc)
		assert.True(t, errors.Is(err, domainErrors.ErrTokenMissing))
	})

	t.Run("builds with a token", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProvider = string(config.AINone)
		cfg.Hosting.Token = "token"

		svc, err := NewContainer(cfg, t.TempDir(), new(runner.MockRunner)).DeployService(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestContainer_HookInstaller(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a relative git dir against the work dir", func(t *testing.T) {
		dir := t.TempDir()
		r := new(runner.MockRunner)
		r.On("Run", mock.Anything, "git rev-parse --git-dir").Return(".git", nil)

		installer, err := NewContainer(config.Default(), dir, r).HookInstaller(ctx)
		require.NoError(t, err)

		path, err := installer.Install(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".git", "hooks", "pre-commit"), path)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("outside a repository", func(t *testing.T) {
		r := new(runner.MockRunner)
		r.On("Run", mock.Anything, "git rev-parse --git-dir").Return("", errors.New("exit status 128"))

		installer, err := NewContainer(config.Default(), t.TempDir(), r).HookInstaller(ctx)

		assert.Nil(t, installer)
		assert.True(t, errors.Is(err, domainErrors.ErrNotInGitRepo))
	})
}
