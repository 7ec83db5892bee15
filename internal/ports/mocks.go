package ports

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockLanguageModel struct {
		mock.Mock
	}

	MockRepositoryHost struct {
		mock.Mock
	}
)

func (m *MockLanguageModel) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLanguageModel) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockRepositoryHost) CreateRepository(ctx context.Context, meta models.RepositoryMetadata) (*models.RemoteRepository, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RemoteRepository), args.Error(1)
}

func (m *MockRepositoryHost) Provider() string {
	args := m.Called()
	return args.String(0)
}

type (
	MockGitService struct {
		mock.Mock
	}

	MockChangeCollector struct {
		mock.Mock
	}

	MockCommitMessageGenerator struct {
		mock.Mock
	}
)

func (m *MockGitService) IsRepository(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) GitDir(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) StageAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) RenameBranch(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockGitService) RemoteURL(ctx context.Context, remote string) (string, error) {
	args := m.Called(ctx, remote)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) AddRemote(ctx context.Context, remote, url string) error {
	args := m.Called(ctx, remote, url)
	return args.Error(0)
}

func (m *MockGitService) SetRemoteURL(ctx context.Context, remote, url string) error {
	args := m.Called(ctx, remote, url)
	return args.Error(0)
}

func (m *MockGitService) Push(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}

func (m *MockChangeCollector) Collect(ctx context.Context) models.ChangeSet {
	args := m.Called(ctx)
	return args.Get(0).(models.ChangeSet)
}

func (m *MockChangeCollector) RecentCommits(ctx context.Context, limit int) models.RecentCommitHistory {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(models.RecentCommitHistory)
}

func (m *MockCommitMessageGenerator) Generate(ctx context.Context, changes models.ChangeSet, history models.RecentCommitHistory) (models.CommitMessage, error) {
	args := m.Called(ctx, changes, history)
	return args.Get(0).(models.CommitMessage), args.Error(1)
}

func (m *MockCommitMessageGenerator) Fallback(changes models.ChangeSet) models.CommitMessage {
	args := m.Called(changes)
	return args.Get(0).(models.CommitMessage)
}

type MockReadmeWriter struct {
	mock.Mock
}

func (m *MockReadmeWriter) Write(ctx context.Context, meta models.RepositoryMetadata) (string, error) {
	args := m.Called(ctx, meta)
	return args.String(0), args.Error(1)
}

type MockQualityChecker struct {
	mock.Mock
}

func (m *MockQualityChecker) Check(ctx context.Context, files []string) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}
