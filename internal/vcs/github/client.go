package github

import (
	"context"
	"net/http"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.RepositoryHost = (*GitHubClient)(nil)

type RepositoriesService interface {
	Create(ctx context.Context, org string, repo *github.Repository) (*github.Repository, *github.Response, error)
	ReplaceAllTopics(ctx context.Context, owner, repo string, topics []string) ([]string, *github.Response, error)
}

type GitHubClient struct {
	repoService RepositoriesService
}

// NewGitHubClient authenticates with token. A non-empty baseURL targets a
// GitHub Enterprise Server instead of github.com.
func NewGitHubClient(token, baseURL string) (*GitHubClient, error) {
	if token == "" {
		return nil, domainErrors.ErrTokenMissing.WithContext("provider", "github")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(httpClient)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, domainErrors.ErrConfigInvalid.WithError(err).WithContext("field", "hosting.base_url")
		}
	}

	return &GitHubClient{
		repoService: client.Repositories,
	}, nil
}

func NewGitHubClientWithServices(repoService RepositoriesService) *GitHubClient {
	return &GitHubClient{repoService: repoService}
}

func (ghc *GitHubClient) Provider() string {
	return "github"
}

// CreateRepository creates the repository for the authenticated user and
// sets its topics.
func (ghc *GitHubClient) CreateRepository(ctx context.Context, meta models.RepositoryMetadata) (*models.RemoteRepository, error) {
	log := logger.FromContext(ctx)

	log.Debug("creating github repository",
		"name", meta.Name,
		"private", meta.Private)

	created, resp, err := ghc.repoService.Create(ctx, "", &github.Repository{
		Name:        github.Ptr(meta.Name),
		Description: github.Ptr(meta.Description),
		Private:     github.Ptr(meta.Private),
	})
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, domainErrors.ErrHostTokenInvalid.
					WithError(err).
					WithContext("operation", "create repository")
			case http.StatusForbidden:
				return nil, domainErrors.ErrHostTokenInvalid.
					WithError(err).
					WithContext("operation", "create repository").
					WithSuggestion("The token needs the 'repo' scope (or 'public_repo' for public repositories)")
			case http.StatusUnprocessableEntity:
				return nil, domainErrors.ErrRepositoryExists.
					WithError(err).
					WithContext("name", meta.Name)
			}
		}
		log.Error("failed to create github repository",
			"error", err,
			"name", meta.Name)
		return nil, domainErrors.ErrCreateRepository.WithError(err).WithContext("name", meta.Name)
	}

	repo := toRemoteRepository(created)

	if topics := normalizeTopics(meta.Topics); len(topics) > 0 {
		owner := created.GetOwner().GetLogin()
		if _, _, err := ghc.repoService.ReplaceAllTopics(ctx, owner, created.GetName(), topics); err != nil {
			log.Warn("failed to set repository topics",
				"error", err,
				"repo", repo.FullName)
		}
	}

	return repo, nil
}

func toRemoteRepository(r *github.Repository) *models.RemoteRepository {
	return &models.RemoteRepository{
		Name:     r.GetName(),
		FullName: r.GetFullName(),
		SSHURL:   r.GetSSHURL(),
		HTTPSURL: r.GetCloneURL(),
		WebURL:   r.GetHTMLURL(),
	}
}

// normalizeTopics lowercases topics and turns spaces into dashes, as GitHub
// only accepts lowercase letters, digits and hyphens.
func normalizeTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	seen := make(map[string]bool)
	for _, t := range topics {
		t = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(t)), " ", "-")
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
