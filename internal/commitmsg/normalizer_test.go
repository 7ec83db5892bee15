package commitmsg

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		rejected bool
	}{
		{
			name: "already clean",
			raw:  "feat(auth): add user registration endpoint",
			want: "feat(auth): add user registration endpoint",
		},
		{
			name: "enclosing quotes",
			raw:  `"fix(api): resolve null pointer"`,
			want: "fix(api): resolve null pointer",
		},
		{
			name: "label is case insensitive",
			raw:  "Commit Message: docs(readme): update install steps",
			want: "docs(readme): update install steps",
		},
		{
			name: "quotes around a label",
			raw:  `  "GIT COMMIT: chore: bump deps"  ` + "\n",
			want: "chore: bump deps",
		},
		{
			name: "label around quotes",
			raw:  `message: "refactor(utils): simplify errors"`,
			want: "refactor(utils): simplify errors",
		},
		{
			name:     "too short",
			raw:      "fix: x",
			want:     "fix: x",
			rejected: true,
		},
		{
			name:     "unknown type",
			raw:      "update: change some files around",
			want:     "update: change some files around",
			rejected: true,
		},
		{
			name:     "type only mentioned later",
			raw:      "Updated things: fix a bug in feat",
			want:     "Updated things: fix a bug in feat",
			rejected: true,
		},
		{
			name:     "no separator",
			raw:      "feat add a new thing to the app",
			want:     "feat add a new thing to the app",
			rejected: true,
		},
		{
			name: "breaking change marker",
			raw:  "security!: rotate signing keys",
			want: "security!: rotate signing keys",
		},
	}

	n := NewNormalizer(72, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := n.Normalize(tt.raw)

			assert.Equal(t, tt.want, msg.Text)
			if tt.rejected {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainErrors.ErrMessageRejected))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizer_Truncation(t *testing.T) {
	n := NewNormalizer(72, true)

	t.Run("long candidates end at exactly the limit", func(t *testing.T) {
		raw := "feat(core): " + strings.Repeat("a", 100)

		msg, err := n.Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, 72, utf8.RuneCountInString(msg.Text))
		assert.True(t, strings.HasSuffix(msg.Text, "..."))
		assert.Equal(t, raw[:69], strings.TrimSuffix(msg.Text, "..."))
	})

	t.Run("exactly at the limit is untouched", func(t *testing.T) {
		raw := "feat: " + strings.Repeat("b", 66)

		msg, err := n.Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, msg.Text)
	})

	t.Run("multibyte text is cut on rune boundaries", func(t *testing.T) {
		raw := "docs: " + strings.Repeat("ñ", 80)

		msg, _ := n.Normalize(raw)

		assert.True(t, utf8.ValidString(msg.Text))
		assert.Equal(t, 72, utf8.RuneCountInString(msg.Text))
	})

	t.Run("custom limit", func(t *testing.T) {
		msg, _ := NewNormalizer(20, false).Normalize("a fairly long free-form message")

		assert.Equal(t, "a fairly long fre...", msg.Text)
	})

	t.Run("nonsensical limit falls back to the default", func(t *testing.T) {
		msg, _ := NewNormalizer(0, false).Normalize(strings.Repeat("x", 80))

		assert.Equal(t, DefaultMaxLength, utf8.RuneCountInString(msg.Text))
	})
}

func TestNormalizer_Idempotent(t *testing.T) {
	inputs := []string{
		`"message: "feat: nested quotes and labels""`,
		`commit message: message: "fix(db): close rows"`,
		"feat(core): " + strings.Repeat("word ", 30),
		`""`,
		"   ",
		`"commit message: ` + strings.Repeat("z", 90) + `"`,
		"refactor: ok",
	}

	for _, conventional := range []bool{true, false} {
		n := NewNormalizer(72, conventional)
		for _, raw := range inputs {
			first, firstErr := n.Normalize(raw)
			second, secondErr := n.Normalize(first.Text)

			assert.Equal(t, first, second, raw)
			assert.Equal(t, firstErr == nil, secondErr == nil, raw)
		}
	}
}

func TestNormalizer_ShortAlwaysRejected(t *testing.T) {
	for _, conventional := range []bool{true, false} {
		n := NewNormalizer(72, conventional)
		for _, raw := range []string{"", "fix: a", `"feat: ok"`, "ci: build"} {
			_, err := n.Normalize(raw)
			assert.True(t, errors.Is(err, domainErrors.ErrMessageRejected), raw)
		}
	}
}

func TestNormalizer_ConventionalDisabled(t *testing.T) {
	msg, err := NewNormalizer(72, false).Normalize("Updated the login page layout")

	assert.NoError(t, err)
	assert.Equal(t, "Updated the login page layout", msg.Text)
}
