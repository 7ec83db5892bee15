package commitmsg

import (
	"path/filepath"
	"strings"

	"github.com/commitpush/commitpush/internal/models"
)

// PathPredicate reports whether a single path satisfies a rule.
type PathPredicate func(path string) bool

// CategoryRule adds Label to the category when any path matches.
type CategoryRule struct {
	Label string
	Match PathPredicate
}

// TypeRule selects Type when any path matches. Rules are evaluated in order
// and the first one with a matching path wins.
type TypeRule struct {
	Type  models.CommitType
	Match PathPredicate
}

const GeneralChanges = "general changes"

var (
	docExtensions    = []string{".md", ".rst", ".txt"}
	configExtensions = []string{".json", ".yml", ".yaml", ".toml", ".ini"}
	sourceExtensions = []string{".py", ".js", ".ts", ".java", ".cpp"}
)

// CategoryRules is checked in this exact order; every matching label is kept.
var CategoryRules = []CategoryRule{
	{Label: "test files", Match: contains("test")},
	{Label: "documentation", Match: hasExtension(docExtensions...)},
	{Label: "configuration", Match: hasExtension(configExtensions...)},
	{Label: "source code", Match: hasExtension(sourceExtensions...)},
}

// TypeRules overrides DefaultCommitType; first match wins.
var TypeRules = []TypeRule{
	{Type: models.CommitFix, Match: contains("fix")},
	{Type: models.CommitDocs, Match: hasExtension(".md")},
	{Type: models.CommitTest, Match: contains("test")},
}

const DefaultCommitType = models.CommitFeat

type Classifier struct {
	categoryRules []CategoryRule
	typeRules     []TypeRule
}

func NewClassifier() *Classifier {
	return &Classifier{
		categoryRules: CategoryRules,
		typeRules:     TypeRules,
	}
}

// Classify derives category, commit type and scope from every path of every slot.
func (c *Classifier) Classify(changes models.ChangeSet) models.ClassificationResult {
	paths := changes.AllPaths()

	return models.ClassificationResult{
		Category:   c.category(paths),
		CommitType: c.commitType(paths),
		Scope:      scopeFor(changes.Files()),
	}
}

func (c *Classifier) category(paths []string) string {
	labels := make([]string, 0, len(c.categoryRules))
	for _, rule := range c.categoryRules {
		if anyMatch(paths, rule.Match) {
			labels = append(labels, rule.Label)
		}
	}
	if len(labels) == 0 {
		return GeneralChanges
	}
	return strings.Join(labels, ", ")
}

func (c *Classifier) commitType(paths []string) models.CommitType {
	for _, rule := range c.typeRules {
		if anyMatch(paths, rule.Match) {
			return rule.Type
		}
	}
	return DefaultCommitType
}

// scopeFor names the single touched file; more than one file has no scope.
func scopeFor(files []string) string {
	if len(files) != 1 {
		return ""
	}
	base := filepath.Base(files[0])
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

func anyMatch(paths []string, match PathPredicate) bool {
	for _, p := range paths {
		if match(p) {
			return true
		}
	}
	return false
}

func contains(substr string) PathPredicate {
	return func(path string) bool {
		return strings.Contains(strings.ToLower(path), substr)
	}
}

func hasExtension(exts ...string) PathPredicate {
	return func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}
