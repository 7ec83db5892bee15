package providers

import (
	"github.com/commitpush/commitpush/internal/config"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/commitpush/commitpush/internal/vcs/github"
	"github.com/commitpush/commitpush/internal/vcs/gitlab"
)

// NewRepositoryHost creates the hosting client for the configured provider.
func NewRepositoryHost(cfg *config.Config) (ports.RepositoryHost, error) {
	hosting := cfg.Hosting

	switch hosting.Provider {
	case "github", "":
		client, err := github.NewGitHubClient(hosting.Token, hosting.BaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "gitlab":
		client, err := gitlab.NewGitLabClient(hosting.Token, hosting.BaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, domainErrors.ErrVCSNotSupported.WithContext("provider", hosting.Provider)
	}
}
