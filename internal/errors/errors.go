package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeMessage       ErrorType = "MESSAGE"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same kind of AppError. Derived errors built
// with WithError/WithContext keep matching the sentinel they came from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrCommandFailed = NewAppError(TypeGit, "Command failed", nil)

	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrInitRepo = NewAppError(TypeGit, "Failed to initialize repository", nil).
			WithSuggestion("Check you have write permissions in the current directory")

	ErrStage = NewAppError(TypeGit, "Failed to stage changes", nil).
			WithSuggestion("Check the status of the working tree: git status")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrRenameBranch = NewAppError(TypeGit, "Failed to rename branch", nil)

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrAddRemote = NewAppError(TypeGit, "Failed to configure remote", nil).
			WithSuggestion("Inspect configured remotes: git remote -v")

	ErrPush = NewAppError(TypeGit, "Failed to push to remote", nil).
		WithSuggestion("Check your SSH connection and repository permissions: git remote -v")

	ErrRemoteUnknown = NewAppError(TypeGit, "No remote configured and none can be derived", nil).
				WithSuggestion("Set your hosting username: commitpush config set hosting.username <name>")
)

// Message errors
var (
	ErrSynthesis = NewAppError(TypeMessage, "Commit message generation failed", nil)

	ErrMessageRejected = NewAppError(TypeMessage, "Commit message rejected", nil)
)

// Configuration errors
var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "Configuration is invalid", nil).
				WithSuggestion("Review your configuration: commitpush config show")

	ErrConfigKeyUnknown = NewAppError(TypeConfiguration, "Unknown configuration key", nil).
				WithSuggestion("Run: commitpush config show")

	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Export GEMINI_API_KEY or add it to a .env file")

	ErrTokenMissing = NewAppError(TypeConfiguration, "Hosting token is missing", nil).
			WithSuggestion("Export GITHUB_TOKEN (or GITLAB_TOKEN) or add it to a .env file")

	ErrManifestInvalid = NewAppError(TypeConfiguration, "Repository manifest is invalid", nil).
				WithSuggestion("Check the YAML syntax of .commitpush.yaml")
)

// AI errors
var (
	ErrAIProviderUnsupported = NewAppError(TypeAI, "AI provider not supported", nil).
					WithSuggestion("Supported providers: ollama, gemini, none")

	ErrAIUnavailable = NewAppError(TypeAI, "AI provider unavailable", nil).
				WithSuggestion("Start the local model server: ollama serve")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or run with --no-ai")

	ErrEmptyCompletion = NewAppError(TypeAI, "AI returned an empty completion", nil)

	ErrAIKeyInvalid = NewAppError(TypeAI, "AI API key is invalid", nil).
			WithSuggestion("Check GEMINI_API_KEY at https://aistudio.google.com/apikey")

	ErrAIQuotaExceeded = NewAppError(TypeAI, "AI quota exceeded", nil).
				WithSuggestion("Wait a moment or run with --no-ai")

	ErrAIModelNotFound = NewAppError(TypeAI, "AI model not found", nil).
				WithSuggestion("Pull the model first: ollama pull <model>")
)

// VCS errors
var (
	ErrVCSNotSupported = NewAppError(TypeVCS, "Hosting provider not supported", nil).
				WithSuggestion("Supported providers: github, gitlab")

	ErrHostTokenInvalid = NewAppError(TypeVCS, "Hosting token is invalid or expired", nil).
				WithSuggestion("Generate a new token with 'repo' scope and export it again")

	ErrRepositoryExists = NewAppError(TypeVCS, "Repository already exists", nil).
				WithSuggestion("Pick another name with --name")

	ErrCreateRepository = NewAppError(TypeVCS, "Failed to create remote repository", nil)

	ErrReadmeExists = NewAppError(TypeInternal, "README.md already exists", nil)

	ErrQualityCheck = NewAppError(TypeInternal, "Syntax check failed", nil).
			WithSuggestion("Fix the reported files or rerun with --skip-checks")

	ErrHookExists = NewAppError(TypeInternal, "A pre-commit hook already exists", nil).
			WithSuggestion("Overwrite it with: commitpush hooks install --force")
)
