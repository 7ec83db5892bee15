package gitlab

import (
	"context"
	"net/http"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/xanzy/go-gitlab"
)

var _ ports.RepositoryHost = (*GitLabClient)(nil)

type ProjectsService interface {
	CreateProject(opt *gitlab.CreateProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error)
}

type GitLabClient struct {
	projects ProjectsService
}

// NewGitLabClient authenticates with a personal access token. baseURL is the
// instance URL, empty for gitlab.com.
func NewGitLabClient(token, baseURL string) (*GitLabClient, error) {
	if token == "" {
		return nil, domainErrors.ErrTokenMissing.WithContext("provider", "gitlab")
	}

	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, domainErrors.ErrConfigInvalid.WithError(err).WithContext("field", "hosting.base_url")
	}

	return NewGitLabClientWithServices(client.Projects), nil
}

func NewGitLabClientWithServices(projects ProjectsService) *GitLabClient {
	return &GitLabClient{projects: projects}
}

func (c *GitLabClient) Provider() string {
	return "gitlab"
}

func (c *GitLabClient) CreateRepository(ctx context.Context, meta models.RepositoryMetadata) (*models.RemoteRepository, error) {
	visibility := gitlab.PublicVisibility
	if meta.Private {
		visibility = gitlab.PrivateVisibility
	}

	opts := &gitlab.CreateProjectOptions{
		Name:        gitlab.Ptr(meta.Name),
		Description: gitlab.Ptr(meta.Description),
		Visibility:  gitlab.Ptr(visibility),
	}
	if len(meta.Topics) > 0 {
		opts.Topics = gitlab.Ptr(meta.Topics)
	}

	logger.Debug(ctx, "creating gitlab project", "name", meta.Name, "visibility", visibility)

	project, resp, err := c.projects.CreateProject(opts, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, domainErrors.ErrHostTokenInvalid.
					WithError(err).
					WithContext("operation", "create project").
					WithSuggestion("The token needs the 'api' scope")
			case http.StatusBadRequest, http.StatusConflict:
				if resp.StatusCode == http.StatusConflict || strings.Contains(err.Error(), "has already been taken") {
					return nil, domainErrors.ErrRepositoryExists.
						WithError(err).
						WithContext("name", meta.Name)
				}
			}
		}
		logger.Error(ctx, "failed to create gitlab project", err, "name", meta.Name)
		return nil, domainErrors.ErrCreateRepository.WithError(err).WithContext("name", meta.Name)
	}

	return &models.RemoteRepository{
		Name:     project.Name,
		FullName: project.PathWithNamespace,
		SSHURL:   project.SSHURLToRepo,
		HTTPSURL: project.HTTPURLToRepo,
		WebURL:   project.WebURL,
	}, nil
}
