package commitmsg

import (
	"strings"
	"unicode/utf8"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/regex"
)

const (
	DefaultMaxLength = 72
	MinLength        = 10
	ellipsis         = "..."
)

// Normalizer cleans a candidate message and decides whether it is usable.
type Normalizer struct {
	maxLength    int
	conventional bool
}

func NewNormalizer(maxLength int, conventional bool) *Normalizer {
	if maxLength <= len(ellipsis) {
		maxLength = DefaultMaxLength
	}
	return &Normalizer{maxLength: maxLength, conventional: conventional}
}

// Normalize strips wrapping quotes and leading labels, truncates to the
// length budget and validates the result. A rejected message is still
// returned, normalized, together with ErrMessageRejected.
func (n *Normalizer) Normalize(raw string) (models.CommitMessage, error) {
	text := n.Clean(raw)
	msg := models.CommitMessage{Text: text}

	if reason := n.rejection(text); reason != "" {
		return msg, domainErrors.ErrMessageRejected.
			WithContext("reason", reason).
			WithContext("message", text)
	}
	return msg, nil
}

// Clean applies the rewriting steps without validating. Applying it to its
// own output is a no-op.
func (n *Normalizer) Clean(raw string) string {
	text := strip(raw)
	if utf8.RuneCountInString(text) > n.maxLength {
		runes := []rune(text)
		text = string(runes[:n.maxLength-len(ellipsis)]) + ellipsis
	}
	return text
}

func (n *Normalizer) rejection(text string) string {
	if utf8.RuneCountInString(text) < MinLength {
		return "too short"
	}
	if n.conventional && !regex.ConventionalHeader.MatchString(text) {
		return "not a conventional commit header"
	}
	return ""
}

// strip removes surrounding whitespace, one pair of enclosing double quotes
// and a known label, repeating until nothing changes.
func strip(text string) string {
	for {
		before := text
		text = strings.TrimSpace(text)
		if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
		text = regex.MessageLabel.ReplaceAllString(text, "")
		if text == before {
			return text
		}
	}
}
