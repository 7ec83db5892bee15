package runner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner records calls by command line: Run(ctx, "git", "diff") is
// matched with On("Run", mock.Anything, "git diff").
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ret := m.Called(ctx, commandLine(name, args))
	return ret.String(0), ret.Error(1)
}

func (m *MockRunner) RunLine(ctx context.Context, line string) (string, error) {
	ret := m.Called(ctx, line)
	return ret.String(0), ret.Error(1)
}

func (m *MockRunner) Exec(ctx context.Context, name string, args ...string) error {
	ret := m.Called(ctx, commandLine(name, args))
	return ret.Error(0)
}
