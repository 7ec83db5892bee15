package ai

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	Category      string
	Files         int
	Additions     int
	Deletions     int
	RecentCommits []string
	FilesSummary  string
	MaxLength     int
	Types         string

	RepoName        string
	RepoDescription string
	Topics          []string
	Listing         string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// The model is asked for English regardless of the UI language; commit
// history is shared and the fallback messages are English too.
const CommitPromptTemplate = `You are a Git commit message expert. Generate a concise, professional commit message in ENGLISH ONLY.

CONTEXT:
Change type: {{.Category}}
Files modified: {{.Files}}
Lines added: {{.Additions}}
Lines deleted: {{.Deletions}}
{{- if .RecentCommits}}
Recent commits: {{range $i, $c := .RecentCommits}}{{if $i}}, {{end}}{{$c}}{{end}}
{{- end}}

FILES CHANGED:
{{.FilesSummary}}

REQUIREMENTS:
1. Use conventional commit format: type(scope): description
2. Types: {{.Types}}
3. Max {{.MaxLength}} characters total
4. Be specific and descriptive
5. Use present tense, imperative mood
6. NO emojis in the message itself
7. Focus on WHAT changed, not HOW

EXAMPLES:
- feat(auth): add user registration endpoint
- fix(api): resolve null pointer in user validation
- docs(readme): update installation instructions
- refactor(utils): simplify error handling logic

Generate ONE commit message only:`

const ReadmePromptTemplate = `Write a README.md in Markdown for a new repository.

# Repository
Name: {{.RepoName}}
{{- if .RepoDescription}}
Description: {{.RepoDescription}}
{{- end}}
{{- if .Topics}}
Topics: {{range $i, $t := .Topics}}{{if $i}}, {{end}}{{$t}}{{end}}
{{- end}}

# Top-level files
{{.Listing}}

# Instructions
1. Start with a level-1 heading containing the repository name.
2. Include the sections: Overview, Installation, Usage, License.
3. Only describe what the file listing supports. Do not invent features.
4. Return raw Markdown only, without wrapping it in a code block.`
