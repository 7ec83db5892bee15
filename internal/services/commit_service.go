package services

import (
	"context"

	"github.com/commitpush/commitpush/internal/commitmsg"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
)

var _ ports.CommitMessageGenerator = (*CommitService)(nil)

// CommitService runs the message pipeline: primary synthesizer, normalizer
// and, on any failure or rejection, the deterministic fallback.
type CommitService struct {
	primary    commitmsg.Synthesizer
	fallback   *commitmsg.FallbackSynthesizer
	normalizer *commitmsg.Normalizer
}

// NewCommitService builds the pipeline. primary may be nil when AI is disabled.
func NewCommitService(primary commitmsg.Synthesizer, fallback *commitmsg.FallbackSynthesizer, normalizer *commitmsg.Normalizer) *CommitService {
	if fallback == nil {
		fallback = commitmsg.NewFallbackSynthesizer(nil)
	}
	if normalizer == nil {
		normalizer = commitmsg.NewNormalizer(commitmsg.DefaultMaxLength, true)
	}
	return &CommitService{
		primary:    primary,
		fallback:   fallback,
		normalizer: normalizer,
	}
}

// Generate never fails because of synthesis or validation; only a cancelled
// context is reported.
func (s *CommitService) Generate(ctx context.Context, changes models.ChangeSet, history models.RecentCommitHistory) (models.CommitMessage, error) {
	if err := ctx.Err(); err != nil {
		return models.CommitMessage{}, err
	}

	if s.primary != nil {
		raw, err := s.primary.Synthesize(ctx, models.SynthesisInput{Changes: changes, History: history})
		switch {
		case err == nil:
			msg, rejectErr := s.normalizer.Normalize(raw)
			if rejectErr == nil {
				msg.Source = models.SourceAI
				return msg, nil
			}
			logger.Info(ctx, "generated message rejected, using fallback", "candidate", msg.Text, "error", rejectErr)
		case ctx.Err() != nil:
			return models.CommitMessage{}, ctx.Err()
		default:
			logger.Info(ctx, "message synthesis failed, using fallback", "error", err)
		}
	}

	return s.Fallback(changes), nil
}

// Fallback returns the deterministic message, truncated to the length budget.
// It is never rejected.
func (s *CommitService) Fallback(changes models.ChangeSet) models.CommitMessage {
	return models.CommitMessage{
		Text:   s.normalizer.Clean(s.fallback.Message(changes)),
		Source: models.SourceFallback,
	}
}
