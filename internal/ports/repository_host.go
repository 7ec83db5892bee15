package ports

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
)

// RepositoryHost creates repositories on a source-code-hosting service.
type RepositoryHost interface {
	CreateRepository(ctx context.Context, meta models.RepositoryMetadata) (*models.RemoteRepository, error)
	// Provider returns the hosting provider name (e.g.: "github")
	Provider() string
}
