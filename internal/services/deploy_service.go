package services

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/commitpush/commitpush/internal/regex"
)

const InitialCommitMessage = "Initial commit"

// DeployService publishes the working tree as a brand new hosted repository.
type DeployService struct {
	host   ports.RepositoryHost
	readme ports.ReadmeWriter
	push   *PushService
}

// NewDeployService wires the flow; readme may be nil when no language model
// is configured.
func NewDeployService(host ports.RepositoryHost, readme ports.ReadmeWriter, push *PushService) *DeployService {
	return &DeployService{
		host:   host,
		readme: readme,
		push:   push,
	}
}

func (s *DeployService) Deploy(ctx context.Context, opts models.DeployOptions) (*models.DeployResult, error) {
	meta := opts.Metadata
	meta.Name = strings.TrimSpace(meta.Name)
	if !regex.RepoName.MatchString(meta.Name) {
		return nil, domainErrors.ErrManifestInvalid.
			WithContext("name", meta.Name).
			WithSuggestion("Use letters, digits, '.', '-' or '_' in --name")
	}

	ctx = logger.With(ctx, "repository", meta.Name, "host", s.host.Provider())

	repo, err := s.host.CreateRepository(ctx, meta)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "remote repository created", "url", repo.WebURL)

	result := &models.DeployResult{Repository: repo}

	if opts.GenerateReadme {
		result.ReadmePath = s.writeReadme(ctx, meta)
	}

	message := strings.TrimSpace(opts.Message)
	if message == "" {
		message = InitialCommitMessage
	}

	pushResult, err := s.push.Run(ctx, models.PushOptions{
		Message:     message,
		Branch:      opts.Branch,
		RemoteURL:   repo.CloneURL(opts.UseSSH),
		ResetRemote: true,
	})
	if err != nil {
		return result, err
	}
	result.Push = pushResult

	return result, nil
}

// writeReadme is best effort: the repository is already created, so a README
// problem must not stop the push.
func (s *DeployService) writeReadme(ctx context.Context, meta models.RepositoryMetadata) string {
	if s.readme == nil {
		logger.Warn(ctx, "README generation skipped, no AI provider configured")
		return ""
	}

	path, err := s.readme.Write(ctx, meta)
	switch {
	case err == nil:
		logger.Info(ctx, "README generated", "path", path)
		return path
	case errors.Is(err, domainErrors.ErrReadmeExists):
		logger.Info(ctx, "README already present, keeping it")
	default:
		logger.Warn(ctx, "README generation failed", "error", err)
	}
	return ""
}
