package regex

import "regexp"

var (
	// Commit patterns
	ConventionalHeader = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|security|config)(\([^)]*\))?!?:`)
	MessageLabel       = regexp.MustCompile(`(?i)^(commit message|message|git commit):\s*`)

	// Git and Repo patterns
	SSHRepo   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	HTTPSRepo = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	// AI output cleanup
	MarkdownFence = regexp.MustCompile("(?s)^```(?:markdown|md)?\\s*\n(.*?)\n?```\\s*$")
	RepoName      = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)
