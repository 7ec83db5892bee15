package hooks

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
)

const (
	PreCommit = "pre-commit"
	marker    = "# installed by commitpush"
)

// preCommitScript blocks staged files over 10MB and asks before committing
// assignments that look like secrets.
const preCommitScript = `#!/bin/sh
` + marker + `
echo "Running pre-commit checks..."

large_files=$(git diff --cached --name-only --diff-filter=ACM -z | xargs -0 -I {} find {} -maxdepth 0 -size +10M 2>/dev/null)
if [ -n "$large_files" ]; then
    echo "Large files detected (>10MB):"
    echo "$large_files"
    echo "Consider using Git LFS for large files."
    exit 1
fi

secrets=$(git diff --cached | grep -E "^\+.*(password|secret|key|token).*=" | grep -v "^\+\s*#" || true)
if [ -n "$secrets" ]; then
    echo "Potential secrets detected in staged changes:"
    echo "$secrets"
    if [ -t 1 ] && exec < /dev/tty; then
        printf "Continue anyway? (y/N): "
        read -r reply
        case "$reply" in
            [Yy]*) ;;
            *) exit 1 ;;
        esac
    else
        exit 1
    fi
fi

echo "Pre-commit checks passed"
`

// Installer writes hook scripts into a repository's hooks directory.
type Installer struct {
	gitDir string
}

// NewInstaller takes the path printed by `git rev-parse --git-dir`.
func NewInstaller(gitDir string) *Installer {
	return &Installer{gitDir: gitDir}
}

// Install writes the pre-commit hook and returns its path. A hook written by
// someone else is only replaced when force is set.
func (i *Installer) Install(ctx context.Context, force bool) (string, error) {
	dir := filepath.Join(i.gitDir, "hooks")
	path := filepath.Join(dir, PreCommit)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !bytes.Contains(existing, []byte(marker)) {
			return "", domainErrors.ErrHookExists.WithContext("path", path)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to read existing hook", err).
			WithContext("path", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to create hooks directory", err).
			WithContext("path", dir)
	}

	if err := os.WriteFile(path, []byte(preCommitScript), 0755); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to write hook", err).
			WithContext("path", path)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0755); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to make hook executable", err).
			WithContext("path", path)
	}

	logger.Info(ctx, "hook installed", "hook", PreCommit, "path", path)
	return path, nil
}
