package git

import (
	"context"
	"errors"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/runner"
)

type GitService struct {
	runner runner.Runner
}

func NewGitService(r runner.Runner) *GitService {
	return &GitService{runner: r}
}

// IsRepository reports whether the working directory is inside a work tree.
func (s *GitService) IsRepository(ctx context.Context) bool {
	out, err := s.runner.Run(ctx, "git", "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// GitDir returns the path of the .git directory.
func (s *GitService) GitDir(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "git", "rev-parse", "--git-dir")
	if err != nil {
		return "", wrap(domainErrors.ErrNotInGitRepo, err)
	}
	return out, nil
}

func (s *GitService) Init(ctx context.Context) error {
	if _, err := s.runner.Run(ctx, "git", "init"); err != nil {
		return wrap(domainErrors.ErrInitRepo, err)
	}
	logger.Info(ctx, "git repository initialized")
	return nil
}

func (s *GitService) StageAll(ctx context.Context) error {
	if _, err := s.runner.Run(ctx, "git", "add", "--all"); err != nil {
		return wrap(domainErrors.ErrStage, err)
	}
	return nil
}

func (s *GitService) Commit(ctx context.Context, message string) error {
	if _, err := s.runner.Run(ctx, "git", "commit", "-m", message); err != nil {
		return wrap(domainErrors.ErrCreateCommit, err)
	}
	logger.Info(ctx, "commit created", "message", message)
	return nil
}

// RenameBranch forces the current branch name, like `git branch -M`.
func (s *GitService) RenameBranch(ctx context.Context, branch string) error {
	if _, err := s.runner.Run(ctx, "git", "branch", "-M", branch); err != nil {
		return wrap(domainErrors.ErrRenameBranch, err).WithContext("branch", branch)
	}
	return nil
}

func (s *GitService) RemoteURL(ctx context.Context, remote string) (string, error) {
	out, err := s.runner.Run(ctx, "git", "remote", "get-url", remote)
	if err != nil {
		return "", wrap(domainErrors.ErrGetRepoURL, err).WithContext("remote", remote)
	}
	return out, nil
}

func (s *GitService) AddRemote(ctx context.Context, remote, url string) error {
	if _, err := s.runner.Run(ctx, "git", "remote", "add", remote, url); err != nil {
		return wrap(domainErrors.ErrAddRemote, err).WithContext("remote", remote)
	}
	return nil
}

func (s *GitService) SetRemoteURL(ctx context.Context, remote, url string) error {
	if _, err := s.runner.Run(ctx, "git", "remote", "set-url", remote, url); err != nil {
		return wrap(domainErrors.ErrAddRemote, err).WithContext("remote", remote)
	}
	return nil
}

// Push sets upstream and streams git's progress to the terminal.
func (s *GitService) Push(ctx context.Context, remote, branch string) error {
	if err := s.runner.Exec(ctx, "git", "push", "-u", remote, branch); err != nil {
		return wrap(domainErrors.ErrPush, err).WithContext("remote", remote).WithContext("branch", branch)
	}
	return nil
}

// wrap attaches err to sentinel, lifting the command diagnostics recorded by
// the runner so they are not nested twice.
func wrap(sentinel *domainErrors.AppError, err error) *domainErrors.AppError {
	var cmdErr *domainErrors.AppError
	if errors.As(err, &cmdErr) && errors.Is(cmdErr, domainErrors.ErrCommandFailed) {
		wrapped := sentinel.WithError(cmdErr.Err)
		for k, v := range cmdErr.Context {
			wrapped = wrapped.WithContext(k, v)
		}
		return wrapped
	}
	return sentinel.WithError(err)
}
