package readme

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/commitpush/commitpush/internal/ai"
	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/logger"
	"github.com/commitpush/commitpush/internal/models"
	"github.com/commitpush/commitpush/internal/ports"
	"github.com/commitpush/commitpush/internal/regex"
)

const (
	FileName        = "README.md"
	maxListedFiles  = 50
	emptyDirListing = "(empty directory)"
)

var _ ports.ReadmeWriter = (*Generator)(nil)

// Generator asks a language model for a README describing the files in dir.
type Generator struct {
	model ports.LanguageModel
	dir   string
}

func NewGenerator(model ports.LanguageModel, dir string) *Generator {
	return &Generator{model: model, dir: dir}
}

// Write generates the README and stores it in dir. An existing README is
// never overwritten.
func (g *Generator) Write(ctx context.Context, meta models.RepositoryMetadata) (string, error) {
	path := filepath.Join(g.dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", domainErrors.ErrReadmeExists.WithContext("path", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to inspect README", err)
	}

	content, err := g.Generate(ctx, meta)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to write README", err).
			WithContext("path", path)
	}
	return path, nil
}

// Generate returns the README content without writing it.
func (g *Generator) Generate(ctx context.Context, meta models.RepositoryMetadata) (string, error) {
	if g.model == nil {
		return "", domainErrors.ErrAIUnavailable
	}

	listing, err := g.listing()
	if err != nil {
		return "", err
	}

	prompt, err := ai.RenderPrompt("readme", ai.ReadmePromptTemplate, ai.PromptData{
		RepoName:        meta.Name,
		RepoDescription: meta.Description,
		Topics:          meta.Topics,
		Listing:         listing,
	})
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to build README prompt", err)
	}

	logger.Debug(ctx, "requesting README", "model", g.model.Name())

	completion, err := g.model.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	content := Clean(completion)
	if content == "" {
		return "", domainErrors.ErrEmptyCompletion.WithContext("model", g.model.Name())
	}
	return content + "\n", nil
}

// Clean removes a code fence wrapping the whole document.
func Clean(completion string) string {
	content := strings.TrimSpace(completion)
	if m := regex.MarkdownFence.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	return content
}

// listing renders the top-level entries of dir, directories with a slash.
func (g *Generator) listing() (string, error) {
	dir := g.dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "Failed to list repository files", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == ".git" {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return emptyDirListing, nil
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i == maxListedFiles {
			b.WriteString("- ...\n")
			break
		}
		b.WriteString("- " + name + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
