package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
)

// Runner executes external commands. A command either succeeds and returns
// its trimmed standard output, or fails with diagnostic text.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	RunLine(ctx context.Context, line string) (string, error)
	Exec(ctx context.Context, name string, args ...string) error
}

var _ Runner = (*ExecRunner)(nil)

type ExecRunner struct {
	dir string
}

// NewExecRunner returns a runner working in dir; empty means the current directory.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{dir: dir}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running command", "cmd", commandLine(name, args))

	if err := cmd.Run(); err != nil {
		return "", commandError(name, args, cmd, err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) RunLine(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", domainErrors.ErrCommandFailed.WithError(fmt.Errorf("empty command line"))
	}
	return r.Run(ctx, fields[0], fields[1:]...)
}

// Exec runs the command attached to the terminal.
func (r *ExecRunner) Exec(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.Stdout = os.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug(ctx, "executing command", "cmd", commandLine(name, args))

	if err := cmd.Run(); err != nil {
		return commandError(name, args, cmd, err, stderr.String())
	}
	if stderr.Len() > 0 {
		_, _ = os.Stderr.Write(stderr.Bytes())
	}
	return nil
}

func commandError(name string, args []string, cmd *exec.Cmd, err error, stderr string) error {
	appErr := domainErrors.ErrCommandFailed.
		WithError(err).
		WithContext("command", commandLine(name, args)).
		WithContext("stderr", strings.TrimSpace(stderr))
	if cmd.ProcessState != nil {
		appErr = appErr.WithContext("exit_code", cmd.ProcessState.ExitCode())
	}
	return appErr
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
