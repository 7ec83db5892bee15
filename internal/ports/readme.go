package ports

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
)

// ReadmeWriter generates and writes a README for a new repository and
// returns the written path.
type ReadmeWriter interface {
	Write(ctx context.Context, meta models.RepositoryMetadata) (string, error)
}
