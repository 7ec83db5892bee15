package deploy

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(ctx context.Context, opts models.DeployOptions) (*models.DeployResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeployResult), args.Error(1)
}
