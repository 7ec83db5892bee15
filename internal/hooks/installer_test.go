package hooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstaller_Install(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an executable hook", func(t *testing.T) {
		gitDir := filepath.Join(t.TempDir(), ".git")

		path, err := NewInstaller(gitDir).Install(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(gitDir, "hooks", "pre-commit"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "#!/bin/sh\n"+marker)
		assert.Contains(t, string(content), "-size +10M")
		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
		}
	})

	t.Run("reinstalling its own hook is allowed", func(t *testing.T) {
		gitDir := t.TempDir()
		installer := NewInstaller(gitDir)

		_, err := installer.Install(ctx, false)
		require.NoError(t, err)
		_, err = installer.Install(ctx, false)

		assert.NoError(t, err)
	})

	t.Run("foreign hook needs force", func(t *testing.T) {
		gitDir := t.TempDir()
		hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
		require.NoError(t, os.MkdirAll(filepath.Dir(hookPath), 0755))
		require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\nmake lint\n"), 0644))
		installer := NewInstaller(gitDir)

		_, err := installer.Install(ctx, false)
		assert.True(t, errors.Is(err, domainErrors.ErrHookExists))
		content, _ := os.ReadFile(hookPath)
		assert.Equal(t, "#!/bin/sh\nmake lint\n", string(content))

		_, err = installer.Install(ctx, true)
		require.NoError(t, err)
		content, _ = os.ReadFile(hookPath)
		assert.Contains(t, string(content), marker)
		if runtime.GOOS != "windows" {
			info, _ := os.Stat(hookPath)
			assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
		}
	})
}
