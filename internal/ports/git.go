package ports

import (
	"context"

	"github.com/commitpush/commitpush/internal/models"
)

// GitService performs the repository mutations of the push flow.
type GitService interface {
	IsRepository(ctx context.Context) bool
	GitDir(ctx context.Context) (string, error)
	Init(ctx context.Context) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	RenameBranch(ctx context.Context, branch string) error
	RemoteURL(ctx context.Context, remote string) (string, error)
	AddRemote(ctx context.Context, remote, url string) error
	SetRemoteURL(ctx context.Context, remote, url string) error
	Push(ctx context.Context, remote, branch string) error
}

// ChangeCollector snapshots the working tree. It never fails; queries that
// cannot run leave their part empty.
type ChangeCollector interface {
	Collect(ctx context.Context) models.ChangeSet
	RecentCommits(ctx context.Context, limit int) models.RecentCommitHistory
}

// QualityChecker vets files before they are staged and committed.
type QualityChecker interface {
	Check(ctx context.Context, files []string) error
}

// CommitMessageGenerator turns a change set into a usable commit message.
type CommitMessageGenerator interface {
	Generate(ctx context.Context, changes models.ChangeSet, history models.RecentCommitHistory) (models.CommitMessage, error)
	Fallback(changes models.ChangeSet) models.CommitMessage
}
