package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/commitpush/commitpush/internal/i18n"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLanguage(t *testing.T) {
	t.Run("keeps a supported language", func(t *testing.T) {
		translations, err := i18n.NewTranslations("es", "")
		require.NoError(t, err)

		err = selectLanguage(context.Background(), translations, "es")

		require.NoError(t, err)
		assert.Equal(t, "💡 Probá: ", translations.GetMessage("ui_error.try_suggestion", 0, nil))
	})

	t.Run("falls back to english and warns", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := logger.WithLogger(context.Background(), logger.New(&buf, false, false))
		translations, err := i18n.NewTranslations("fr", "")
		require.NoError(t, err)

		err = selectLanguage(ctx, translations, "fr")

		require.NoError(t, err)
		assert.Equal(t, "💡 Try: ", translations.GetMessage("ui_error.try_suggestion", 0, nil))
		assert.Contains(t, buf.String(), "configured language not available")
		assert.Contains(t, buf.String(), "lang=fr")
	})
}
