package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGitService(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit passes the message as a single argument", func(t *testing.T) {
		r := new(runner.MockRunner)
		r.On("Run", mock.Anything, `git commit -m fix(api): handle "quoted" input`).Return("", nil)

		err := NewGitService(r).Commit(ctx, `fix(api): handle "quoted" input`)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("Commit failure lifts runner diagnostics", func(t *testing.T) {
		r := new(runner.MockRunner)
		cmdErr := domainErrors.ErrCommandFailed.
			WithError(errors.New("exit status 1")).
			WithContext("stderr", "Author identity unknown")
		r.On("Run", mock.Anything, "git commit -m feat: x").Return("", cmdErr)

		err := NewGitService(r).Commit(ctx, "feat: x")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrCreateCommit))
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Author identity unknown", appErr.Context["stderr"])
		assert.Equal(t, "GIT: Failed to create commit (exit status 1) - Author identity unknown", err.Error())
	})

	t.Run("Push streams through Exec", func(t *testing.T) {
		r := new(runner.MockRunner)
		r.On("Exec", mock.Anything, "git push -u origin main").Return(errors.New("exit status 128"))

		err := NewGitService(r).Push(ctx, "origin", "main")

		assert.True(t, errors.Is(err, domainErrors.ErrPush))
	})

	t.Run("IsRepository", func(t *testing.T) {
		r := new(runner.MockRunner)
		r.On("Run", mock.Anything, "git rev-parse --is-inside-work-tree").Return("true", nil).Once()
		r.On("Run", mock.Anything, "git rev-parse --is-inside-work-tree").Return("", errors.New("not a git repository")).Once()

		svc := NewGitService(r)

		assert.True(t, svc.IsRepository(ctx))
		assert.False(t, svc.IsRepository(ctx))
	})

	t.Run("remote management", func(t *testing.T) {
		r := new(runner.MockRunner)
		r.On("Run", mock.Anything, "git remote get-url origin").Return("git@github.com:me/demo.git", nil)
		r.On("Run", mock.Anything, "git remote add upstream https://x/y.git").Return("", nil)
		r.On("Run", mock.Anything, "git remote set-url origin https://x/z.git").Return("", errors.New("boom"))
		svc := NewGitService(r)

		url, err := svc.RemoteURL(ctx, "origin")
		require.NoError(t, err)
		assert.Equal(t, "git@github.com:me/demo.git", url)

		assert.NoError(t, svc.AddRemote(ctx, "upstream", "https://x/y.git"))
		assert.True(t, errors.Is(svc.SetRemoteURL(ctx, "origin", "https://x/z.git"), domainErrors.ErrAddRemote))
	})
}

func setupTestRepo(t *testing.T) (string, *runner.ExecRunner) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	r := runner.NewExecRunner(dir)
	ctx := context.Background()

	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if _, err := r.Run(ctx, "git", args...); err != nil {
			t.Fatalf("error preparing repository: %v", err)
		}
	}

	return dir, r
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollector_Integration(t *testing.T) {
	ctx := context.Background()
	dir, r := setupTestRepo(t)
	collector := NewCollector(r)
	svc := NewGitService(r)

	require.True(t, svc.IsRepository(ctx))

	writeFile(t, dir, "src/app.py", "print('hi')\n")
	cs := collector.Collect(ctx)
	assert.Equal(t, []string{"src/app.py"}, cs.Untracked)
	assert.Equal(t, models.LineDelta{}, cs.Delta)
	assert.Empty(t, collector.RecentCommits(ctx, 5))

	require.NoError(t, svc.StageAll(ctx))
	require.NoError(t, svc.Commit(ctx, "feat(app): add 1 file"))

	writeFile(t, dir, "src/app.py", "print('hi')\nprint('bye')\n")
	cs = collector.Collect(ctx)
	assert.Equal(t, []string{"src/app.py"}, cs.Modified)
	assert.Empty(t, cs.Staged)
	assert.Equal(t, models.LineDelta{Files: 1, Additions: 1, Deletions: 0}, cs.Delta)

	require.NoError(t, svc.StageAll(ctx))
	cs = collector.Collect(ctx)
	assert.Empty(t, cs.Modified)
	assert.Equal(t, []string{"src/app.py"}, cs.Staged)
	assert.Equal(t, models.LineDelta{Files: 1, Additions: 1, Deletions: 0}, cs.Delta)

	history := collector.RecentCommits(ctx, 5)
	require.Len(t, history, 1)
	assert.Contains(t, history[0], "feat(app): add 1 file")

	require.NoError(t, svc.RenameBranch(ctx, "main"))
	_, err := svc.RemoteURL(ctx, "origin")
	assert.True(t, errors.Is(err, domainErrors.ErrGetRepoURL))
}
