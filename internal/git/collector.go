package git

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/runner"
)

// Collector builds a ChangeSet from independent git queries. A failing query
// leaves its slot empty; collection itself never fails.
type Collector struct {
	runner runner.Runner
}

func NewCollector(r runner.Runner) *Collector {
	return &Collector{runner: r}
}

func (c *Collector) Collect(ctx context.Context) models.ChangeSet {
	changes := models.ChangeSet{
		Untracked: c.list(ctx, "untracked", "ls-files", "--others", "--exclude-standard"),
		Modified:  c.list(ctx, "modified", "diff", "--name-only"),
		Staged:    c.list(ctx, "staged", "diff", "--cached", "--name-only"),
		Deleted:   c.list(ctx, "deleted", "ls-files", "--deleted"),
		// no rename query exists yet; the slot stays empty
		Renamed: nil,
		Delta:   c.lineDelta(ctx),
	}

	logger.Info(ctx, "repository status collected",
		"untracked", len(changes.Untracked),
		"modified", len(changes.Modified),
		"staged", len(changes.Staged),
		"deleted", len(changes.Deleted),
		"files", changes.Delta.Files,
		"additions", changes.Delta.Additions,
		"deletions", changes.Delta.Deletions)

	return changes
}

// RecentCommits returns up to limit one-line summaries, newest first.
func (c *Collector) RecentCommits(ctx context.Context, limit int) models.RecentCommitHistory {
	if limit <= 0 {
		return nil
	}
	out, ok := c.query(ctx, "history", "log", "--oneline", "-n", strconv.Itoa(limit))
	if !ok {
		return nil
	}
	return models.RecentCommitHistory(splitLines(out))
}

func (c *Collector) lineDelta(ctx context.Context) models.LineDelta {
	out, ok := c.query(ctx, "numstat", "diff", "--numstat")
	if !ok || out == "" {
		out, _ = c.query(ctx, "numstat_cached", "diff", "--cached", "--numstat")
	}
	return ParseNumstat(out)
}

func (c *Collector) list(ctx context.Context, slot string, args ...string) []string {
	out, ok := c.query(ctx, slot, args...)
	if !ok {
		return nil
	}
	return splitLines(out)
}

func (c *Collector) query(ctx context.Context, slot string, args ...string) (string, bool) {
	out, err := c.runner.Run(ctx, "git", args...)
	if err != nil {
		logger.Debug(ctx, "status query failed, using empty result", "slot", slot, "error", err)
		return "", false
	}
	if !utf8.ValidString(out) {
		logger.Debug(ctx, "status query returned undecodable output, using empty result", "slot", slot)
		return "", false
	}
	return out, true
}

// ParseNumstat sums `git diff --numstat` output. Binary files ("-") count as
// zero lines; lines that do not start with two counts are skipped.
func ParseNumstat(out string) models.LineDelta {
	var delta models.LineDelta
	for _, line := range splitLines(out) {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		additions, ok := parseCount(parts[0])
		if !ok {
			continue
		}
		deletions, ok := parseCount(parts[1])
		if !ok {
			continue
		}
		delta.Additions += additions
		delta.Deletions += deletions
		delta.Files++
	}
	return delta
}

func parseCount(field string) (int, bool) {
	if field == "-" {
		return 0, true
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
