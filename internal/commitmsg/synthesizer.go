package commitmsg

import (
	"context"
	"fmt"
	"strings"

	"github.com/commitpush/commitpush/internal/ai"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
)

// Synthesizer produces one candidate commit message for a change set.
type Synthesizer interface {
	Synthesize(ctx context.Context, input models.SynthesisInput) (string, error)
}

var (
	_ Synthesizer = (*FallbackSynthesizer)(nil)
	_ Synthesizer = (*GenerativeSynthesizer)(nil)
)

const (
	NoChangesMessage = "chore: update repository"

	promptFilesPerSlot   = 3
	promptRecentCommits  = 3
	noFilesDetectedLabel = "No specific files detected"
)

// FallbackSynthesizer derives the message from the classification alone and
// never fails.
type FallbackSynthesizer struct {
	classifier *Classifier
}

func NewFallbackSynthesizer(classifier *Classifier) *FallbackSynthesizer {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &FallbackSynthesizer{classifier: classifier}
}

func (s *FallbackSynthesizer) Synthesize(_ context.Context, input models.SynthesisInput) (string, error) {
	return s.Message(input.Changes), nil
}

// Message renders "{type}{(scope)}: {update|add} {n} file(s)".
func (s *FallbackSynthesizer) Message(changes models.ChangeSet) string {
	count := len(changes.Files())
	if count == 0 {
		return NoChangesMessage
	}

	result := s.classifier.Classify(changes)

	action := "add"
	if len(changes.Modified) > 0 {
		action = "update"
	}
	noun := "files"
	if count == 1 {
		noun = "file"
	}

	return fmt.Sprintf("%s%s: %s %d %s", result.CommitType, result.FormattedScope(), action, count, noun)
}

// GenerativeSynthesizer asks a language model for the message. Every failure
// is reported as ErrSynthesis so callers can fall back.
type GenerativeSynthesizer struct {
	model      ports.LanguageModel
	classifier *Classifier
	maxLength  int
}

func NewGenerativeSynthesizer(model ports.LanguageModel, classifier *Classifier, maxLength int) *GenerativeSynthesizer {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &GenerativeSynthesizer{model: model, classifier: classifier, maxLength: maxLength}
}

func (s *GenerativeSynthesizer) Synthesize(ctx context.Context, input models.SynthesisInput) (string, error) {
	if s.model == nil {
		return "", domainErrors.ErrSynthesis.WithError(domainErrors.ErrAIUnavailable)
	}

	prompt, err := s.Prompt(input)
	if err != nil {
		return "", domainErrors.ErrSynthesis.WithError(err)
	}

	logger.Debug(ctx, "requesting commit message", "model", s.model.Name(), "prompt_length", len(prompt))

	completion, err := s.model.Complete(ctx, prompt)
	if err != nil {
		logger.Warn(ctx, "AI generation failed", "model", s.model.Name(), "error", err)
		return "", domainErrors.ErrSynthesis.WithError(err).WithContext("model", s.model.Name())
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		logger.Warn(ctx, "AI returned an empty completion", "model", s.model.Name())
		return "", domainErrors.ErrSynthesis.WithError(domainErrors.ErrEmptyCompletion).WithContext("model", s.model.Name())
	}

	return completion, nil
}

// Prompt renders the commit prompt for input.
func (s *GenerativeSynthesizer) Prompt(input models.SynthesisInput) (string, error) {
	changes := input.Changes
	types := make([]string, 0, len(models.CommitTypes))
	for _, t := range models.CommitTypes {
		types = append(types, string(t))
	}

	return ai.RenderPrompt("commit", ai.CommitPromptTemplate, ai.PromptData{
		Category:      s.classifier.Classify(changes).Category,
		Files:         changes.Delta.Files,
		Additions:     changes.Delta.Additions,
		Deletions:     changes.Delta.Deletions,
		RecentCommits: input.History.Recent(promptRecentCommits),
		FilesSummary:  FilesSummary(changes),
		MaxLength:     s.maxLength,
		Types:         strings.Join(types, ", "),
	})
}

// FilesSummary lists up to three paths per non-empty slot, e.g.
//
//	MODIFIED: a.go, b.go, c.go
//	... and 2 more
func FilesSummary(changes models.ChangeSet) string {
	var lines []string
	for _, slot := range changes.Slots() {
		paths := nonEmpty(slot.Paths)
		if len(paths) == 0 {
			continue
		}
		shown := paths
		if len(shown) > promptFilesPerSlot {
			shown = shown[:promptFilesPerSlot]
		}
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(slot.Name), strings.Join(shown, ", ")))
		if extra := len(paths) - len(shown); extra > 0 {
			lines = append(lines, fmt.Sprintf("... and %d more", extra))
		}
	}
	if len(lines) == 0 {
		return noFilesDetectedLabel
	}
	return strings.Join(lines, "\n")
}

func nonEmpty(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
