package models

type (
	PushOptions struct {
		DryRun  bool
		NoAI    bool
		Message string
		Branch  string
		// SkipChecks disables the syntax checks run before staging.
		SkipChecks bool
		// RemoteURL overrides the URL used when origin has to be added or re-pointed.
		RemoteURL string
		// ResetRemote re-points an existing origin to RemoteURL.
		ResetRemote bool
	}

	PushResult struct {
		Initialized bool
		UpToDate    bool
		DryRun      bool
		Changes     ChangeSet
		Message     CommitMessage
		Branch      string
		RemoteURL   string
		RemoteAdded bool
		Pushed      bool
	}
)

type (
	DeployOptions struct {
		Metadata       RepositoryMetadata
		GenerateReadme bool
		Message        string
		Branch         string
		UseSSH         bool
	}

	DeployResult struct {
		Repository *RemoteRepository
		ReadmePath string
		Push       *PushResult
	}
)
