package models

// CommitType is a conventional commit type.
type CommitType string

const (
	CommitFeat     CommitType = "feat"
	CommitFix      CommitType = "fix"
	CommitDocs     CommitType = "docs"
	CommitStyle    CommitType = "style"
	CommitRefactor CommitType = "refactor"
	CommitPerf     CommitType = "perf"
	CommitTest     CommitType = "test"
	CommitBuild    CommitType = "build"
	CommitCI       CommitType = "ci"
	CommitChore    CommitType = "chore"
	CommitSecurity CommitType = "security"
	CommitConfig   CommitType = "config"
)

// CommitTypes is the closed vocabulary accepted in commit headers.
var CommitTypes = []CommitType{
	CommitFeat, CommitFix, CommitDocs, CommitStyle, CommitRefactor, CommitPerf,
	CommitTest, CommitBuild, CommitCI, CommitChore, CommitSecurity, CommitConfig,
}

// MessageSource tells where a commit message came from.
type MessageSource string

const (
	SourceAI       MessageSource = "ai"
	SourceFallback MessageSource = "fallback"
	SourceUser     MessageSource = "user"
)

type (
	ClassificationResult struct {
		Category   string
		CommitType CommitType
		Scope      string
	}

	CommitMessage struct {
		Text   string
		Source MessageSource
	}

	// SynthesisInput is everything a synthesizer may look at.
	SynthesisInput struct {
		Changes ChangeSet
		History RecentCommitHistory
	}
)

// FormattedScope renders the scope as "(scope)", or "" when empty.
func (r ClassificationResult) FormattedScope() string {
	if r.Scope == "" {
		return ""
	}
	return "(" + r.Scope + ")"
}
