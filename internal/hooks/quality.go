package hooks

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/runner"
)

// SyntaxCheck parses or compiles one kind of source file without running it.
type SyntaxCheck struct {
	Extensions []string
	// Probe is run once per checker to see whether the tool is installed.
	Probe   string
	Command string
	Args    []string
}

var DefaultSyntaxChecks = []SyntaxCheck{
	{Extensions: []string{".py"}, Probe: "python3 --version", Command: "python3", Args: []string{"-m", "py_compile"}},
	{Extensions: []string{".go"}, Probe: "go version", Command: "gofmt", Args: []string{"-l", "-e"}},
	{Extensions: []string{".js", ".mjs", ".cjs"}, Probe: "node --version", Command: "node", Args: []string{"--check"}},
	{Extensions: []string{".sh"}, Probe: "sh -c true", Command: "sh", Args: []string{"-n"}},
}

// QualityChecker runs syntax checks on files about to be committed.
type QualityChecker struct {
	runner    runner.Runner
	checks    []SyntaxCheck
	installed map[string]bool
}

func NewQualityChecker(r runner.Runner, checks []SyntaxCheck) *QualityChecker {
	return &QualityChecker{
		runner:    r,
		checks:    checks,
		installed: make(map[string]bool),
	}
}

// Check fails when any file has a syntax error. Files without a matching
// check, or whose tool is not installed, are skipped.
func (c *QualityChecker) Check(ctx context.Context, files []string) error {
	var failed []string
	var firstErr error

	for _, file := range files {
		check, ok := c.checkFor(file)
		if !ok {
			continue
		}
		if !c.available(ctx, check) {
			logger.Debug(ctx, "syntax check skipped, tool not installed", "file", file, "tool", check.Command)
			continue
		}

		args := append(append([]string{}, check.Args...), file)
		if _, err := c.runner.Run(ctx, check.Command, args...); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn(ctx, "syntax check failed", "file", file, "error", err)
			failed = append(failed, file)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if len(failed) == 0 {
		return nil
	}

	appErr := domainErrors.ErrQualityCheck.
		WithError(firstErr).
		WithContext("files", strings.Join(failed, ", "))
	var runErr *domainErrors.AppError
	if errors.As(firstErr, &runErr) {
		if stderr, ok := runErr.Context["stderr"].(string); ok && stderr != "" {
			appErr = appErr.WithContext("stderr", stderr)
		}
	}
	return appErr
}

func (c *QualityChecker) checkFor(file string) (SyntaxCheck, bool) {
	ext := strings.ToLower(filepath.Ext(file))
	for _, check := range c.checks {
		for _, e := range check.Extensions {
			if e == ext {
				return check, true
			}
		}
	}
	return SyntaxCheck{}, false
}

func (c *QualityChecker) available(ctx context.Context, check SyntaxCheck) bool {
	if ok, seen := c.installed[check.Probe]; seen {
		return ok
	}
	_, err := c.runner.RunLine(ctx, check.Probe)
	c.installed[check.Probe] = err == nil
	return err == nil
}
