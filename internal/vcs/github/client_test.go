package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createdRepo() *github.Repository {
	return &github.Repository{
		Name:     github.Ptr("demo"),
		FullName: github.Ptr("octo/demo"),
		SSHURL:   github.Ptr("git@github.com:octo/demo.git"),
		CloneURL: github.Ptr("https://github.com/octo/demo.git"),
		HTMLURL:  github.Ptr("https://github.com/octo/demo"),
		Owner:    &github.User{Login: github.Ptr("octo")},
	}
}

func responseWithStatus(code int) *github.Response {
	return &github.Response{Response: &http.Response{StatusCode: code}}
}

func TestGitHubClient_CreateRepository(t *testing.T) {
	meta := models.RepositoryMetadata{
		Name:        "demo",
		Description: "Demo repository",
		Private:     true,
		Topics:      []string{"Go", "command line", "go"},
	}

	t.Run("should create the repository and set topics", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Create", mock.Anything, "", mock.MatchedBy(func(r *github.Repository) bool {
			return r.GetName() == "demo" && r.GetDescription() == "Demo repository" && r.GetPrivate()
		})).Return(createdRepo(), responseWithStatus(http.StatusCreated), nil)
		mockRepo.On("ReplaceAllTopics", mock.Anything, "octo", "demo", []string{"go", "command-line"}).
			Return([]string{"go", "command-line"}, responseWithStatus(http.StatusOK), nil)

		repo, err := client.CreateRepository(context.Background(), meta)

		require.NoError(t, err)
		assert.Equal(t, &models.RemoteRepository{
			Name:     "demo",
			FullName: "octo/demo",
			SSHURL:   "git@github.com:octo/demo.git",
			HTTPSURL: "https://github.com/octo/demo.git",
			WebURL:   "https://github.com/octo/demo",
		}, repo)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should skip topics when none are given", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Create", mock.Anything, "", mock.Anything).Return(createdRepo(), responseWithStatus(http.StatusCreated), nil)

		_, err := client.CreateRepository(context.Background(), models.RepositoryMetadata{Name: "demo"})

		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "ReplaceAllTopics", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should ignore topic failures", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Create", mock.Anything, "", mock.Anything).Return(createdRepo(), responseWithStatus(http.StatusCreated), nil)
		mockRepo.On("ReplaceAllTopics", mock.Anything, "octo", "demo", mock.Anything).
			Return([]string(nil), responseWithStatus(http.StatusUnprocessableEntity), errors.New("invalid topic"))

		repo, err := client.CreateRepository(context.Background(), meta)

		require.NoError(t, err)
		assert.Equal(t, "octo/demo", repo.FullName)
	})

	errorCases := []struct {
		name    string
		status  int
		wantErr *domainErrors.AppError
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domainErrors.ErrHostTokenInvalid},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domainErrors.ErrHostTokenInvalid},
		{name: "name taken", status: http.StatusUnprocessableEntity, wantErr: domainErrors.ErrRepositoryExists},
		{name: "server error", status: http.StatusBadGateway, wantErr: domainErrors.ErrCreateRepository},
	}
	for _, tc := range errorCases {
		t.Run("should map "+tc.name, func(t *testing.T) {
			mockRepo := &MockRepoService{}
			client := NewGitHubClientWithServices(mockRepo)

			mockRepo.On("Create", mock.Anything, "", mock.Anything).
				Return(nil, responseWithStatus(tc.status), errors.New("api error"))

			repo, err := client.CreateRepository(context.Background(), meta)

			assert.Nil(t, repo)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}

	t.Run("should map transport errors", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Create", mock.Anything, "", mock.Anything).Return(nil, nil, errors.New("dial tcp: no such host"))

		_, err := client.CreateRepository(context.Background(), meta)

		assert.True(t, errors.Is(err, domainErrors.ErrCreateRepository))
	})
}

func TestNewGitHubClient(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		client, err := NewGitHubClient("", "")

		assert.Nil(t, client)
		assert.True(t, errors.Is(err, domainErrors.ErrTokenMissing))
	})

	t.Run("talks to an enterprise server", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/v3/user/repos" {
				http.NotFound(w, r)
				return
			}
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name":"demo","full_name":"octo/demo","ssh_url":"git@ghe.local:octo/demo.git","clone_url":"https://ghe.local/octo/demo.git","html_url":"https://ghe.local/octo/demo","owner":{"login":"octo"}}`))
		}))
		defer server.Close()

		client, err := NewGitHubClient("secret", server.URL)
		require.NoError(t, err)

		repo, err := client.CreateRepository(context.Background(), models.RepositoryMetadata{Name: "demo"})

		require.NoError(t, err)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "demo", gotBody["name"])
		assert.Equal(t, "git@ghe.local:octo/demo.git", repo.SSHURL)
	})
}
