package services

import (
	"context"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
)

// PushConfig carries the settings the push flow needs. It is filled from the
// user configuration by the caller.
type PushConfig struct {
	Branch        string
	Remote        string
	RemoteURL     string
	RecentCommits int
}

type PushService struct {
	git       ports.GitService
	collector ports.ChangeCollector
	messages  ports.CommitMessageGenerator
	checker   ports.QualityChecker
	cfg       PushConfig
}

// NewPushService wires the push flow. A nil checker disables syntax checks.
func NewPushService(git ports.GitService, collector ports.ChangeCollector, messages ports.CommitMessageGenerator, checker ports.QualityChecker, cfg PushConfig) *PushService {
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	return &PushService{
		git:       git,
		collector: collector,
		messages:  messages,
		checker:   checker,
		cfg:       cfg,
	}
}

// Run detects changes, commits them with a synthesized or explicit message
// and pushes the branch. Commit and push failures are returned as is.
func (s *PushService) Run(ctx context.Context, opts models.PushOptions) (*models.PushResult, error) {
	result := &models.PushResult{
		DryRun: opts.DryRun,
		Branch: s.branch(opts),
	}

	if !s.git.IsRepository(ctx) {
		result.Initialized = true
		if opts.DryRun {
			logger.Info(ctx, "dry run: repository would be initialized")
		} else if err := s.git.Init(ctx); err != nil {
			return nil, err
		}
	}

	changes := s.collector.Collect(ctx)
	result.Changes = changes
	if !changes.HasChanges() {
		result.UpToDate = true
		return result, nil
	}

	if opts.DryRun {
		return result, nil
	}

	if s.checker != nil && !opts.SkipChecks {
		if err := s.checker.Check(ctx, changes.ExistingFiles()); err != nil {
			return nil, err
		}
	}

	msg, err := s.message(ctx, changes, opts)
	if err != nil {
		return nil, err
	}
	result.Message = msg

	if err := s.git.StageAll(ctx); err != nil {
		return nil, err
	}

	if err := s.git.Commit(ctx, msg.Text); err != nil {
		return nil, err
	}

	if err := s.git.RenameBranch(ctx, result.Branch); err != nil {
		return nil, err
	}

	remoteURL, added, err := s.ensureRemote(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.RemoteURL = remoteURL
	result.RemoteAdded = added

	if err := s.git.Push(ctx, s.cfg.Remote, result.Branch); err != nil {
		return nil, err
	}
	result.Pushed = true

	logger.Info(ctx, "changes pushed",
		"branch", result.Branch,
		"remote", s.cfg.Remote,
		"source", msg.Source)

	return result, nil
}

// Suggest returns the message the push flow would use, without touching the
// repository.
func (s *PushService) Suggest(ctx context.Context, noAI bool) (models.ChangeSet, models.CommitMessage, error) {
	changes := s.collector.Collect(ctx)
	if !changes.HasChanges() {
		return changes, models.CommitMessage{}, nil
	}
	msg, err := s.message(ctx, changes, models.PushOptions{NoAI: noAI})
	return changes, msg, err
}

func (s *PushService) message(ctx context.Context, changes models.ChangeSet, opts models.PushOptions) (models.CommitMessage, error) {
	if text := strings.TrimSpace(opts.Message); text != "" {
		return models.CommitMessage{Text: text, Source: models.SourceUser}, nil
	}
	if opts.NoAI {
		return s.messages.Fallback(changes), nil
	}
	history := s.collector.RecentCommits(ctx, s.cfg.RecentCommits)
	return s.messages.Generate(ctx, changes, history)
}

// ensureRemote adds the remote when it is missing, or re-points it when asked
// to. It reports the URL in use and whether it was added.
func (s *PushService) ensureRemote(ctx context.Context, opts models.PushOptions) (string, bool, error) {
	wanted := opts.RemoteURL
	if wanted == "" {
		wanted = s.cfg.RemoteURL
	}

	existing, err := s.git.RemoteURL(ctx, s.cfg.Remote)
	if err == nil && existing != "" {
		if !opts.ResetRemote || wanted == "" || wanted == existing {
			return existing, false, nil
		}
		if err := s.git.SetRemoteURL(ctx, s.cfg.Remote, wanted); err != nil {
			return "", false, err
		}
		logger.Info(ctx, "remote re-pointed", "remote", s.cfg.Remote, "url", wanted)
		return wanted, false, nil
	}

	if wanted == "" {
		return "", false, domainErrors.ErrRemoteUnknown.WithContext("remote", s.cfg.Remote)
	}
	if err := s.git.AddRemote(ctx, s.cfg.Remote, wanted); err != nil {
		return "", false, err
	}
	logger.Info(ctx, "remote configured", "remote", s.cfg.Remote, "url", wanted)
	return wanted, true, nil
}

func (s *PushService) branch(opts models.PushOptions) string {
	if opts.Branch != "" {
		return opts.Branch
	}
	return s.cfg.Branch
}
