package push

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) Run(ctx context.Context, opts models.PushOptions) (*models.PushResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PushResult), args.Error(1)
}

func (m *MockPusher) Suggest(ctx context.Context, noAI bool) (models.ChangeSet, models.CommitMessage, error) {
	args := m.Called(ctx, noAI)
	return args.Get(0).(models.ChangeSet), args.Get(1).(models.CommitMessage), args.Error(2)
}
