package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("exit status 128")
	appErr := ErrPush.WithError(baseErr)

	assert.Equal(t, baseErr, appErr.Err)
	assert.Equal(t, TypeGit, appErr.Type)
	assert.Equal(t, ErrPush.Suggestion, appErr.Suggestion)
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrCommandFailed.WithContext("command", "git push").WithContext("stderr", "permission denied")

	assert.Equal(t, "git push", appErr.Context["command"])
	assert.Equal(t, "permission denied", appErr.Context["stderr"])
	assert.Nil(t, ErrCommandFailed.Context, "sentinel must not be mutated")
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "Simple error without underlying error",
			err:      ErrNotInGitRepo,
			contains: []string{"GIT", "Not in a git repository"},
		},
		{
			name:     "Error with underlying error",
			err:      ErrCreateCommit.WithError(errors.New("exit status 1")),
			contains: []string{"GIT", "Failed to create commit", "exit status 1"},
		},
		{
			name: "Error with stderr context",
			err: ErrPush.WithError(errors.New("exit status 128")).
				WithContext("stderr", "Could not read from remote repository"),
			contains: []string{"Failed to push to remote", "exit status 128", "Could not read from remote repository"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	t.Run("derived errors match their sentinel", func(t *testing.T) {
		err := ErrAIUnavailable.WithError(errors.New("connection refused")).WithContext("provider", "ollama")
		wrapped := fmt.Errorf("generate: %w", err)

		assert.True(t, errors.Is(wrapped, ErrAIUnavailable))
		assert.False(t, errors.Is(wrapped, ErrAIGeneration))
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		base := errors.New("boom")
		err := ErrCreateRepository.WithError(base)

		assert.True(t, errors.Is(err, base))
	})

	t.Run("errors.As extracts the suggestion", func(t *testing.T) {
		var appErr *AppError
		err := fmt.Errorf("deploy: %w", ErrRepositoryExists.WithContext("name", "demo"))

		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Pick another name with --name", appErr.Suggestion)
		assert.Equal(t, "demo", appErr.Context["name"])
	})
}
