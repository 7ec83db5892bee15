package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/commitpush/commitpush/internal/models"
	"github.com/fatih/color"
)

// FileChange is one touched path with the slots it appears in.
type FileChange struct {
	Path     string
	Statuses []string
}

// FileChanges flattens a ChangeSet into distinct paths, keeping the
// first-seen order.
func FileChanges(changes models.ChangeSet) []FileChange {
	index := make(map[string]int)
	var out []FileChange
	for _, slot := range changes.Slots() {
		for _, p := range slot.Paths {
			if p == "" {
				continue
			}
			i, ok := index[p]
			if !ok {
				i = len(out)
				index[p] = i
				out = append(out, FileChange{Path: p})
			}
			out[i].Statuses = append(out[i].Statuses, slot.Name)
		}
	}
	return out
}

// ShowFilesTree prints the changed files as a directory tree.
func ShowFilesTree(changes models.ChangeSet, headerMessage string) {
	files := FileChanges(changes)
	if len(files) == 0 {
		return
	}

	_, _ = fmt.Fprintf(Out, "\n%s %s\n", StatsEmoji, headerMessage)
	printTree(buildFileTree(files), "", true)
	_, _ = fmt.Fprintln(Out)
}

type treeNode struct {
	name     string
	isFile   bool
	change   *FileChange
	children map[string]*treeNode
}

func buildFileTree(changes []FileChange) *treeNode {
	root := &treeNode{children: make(map[string]*treeNode)}

	for i := range changes {
		change := &changes[i]
		parts := strings.Split(change.Path, "/")
		current := root

		for j, part := range parts {
			isFile := j == len(parts)-1
			if current.children[part] == nil {
				current.children[part] = &treeNode{
					name:     part,
					isFile:   isFile,
					children: make(map[string]*treeNode),
				}
			}
			if isFile {
				current.children[part].change = change
			}
			current = current.children[part]
		}
	}
	return root
}

func printTree(node *treeNode, prefix string, isLast bool) {
	if node.name != "" {
		connector := "├── "
		if isLast {
			connector = "└── "
		}

		name := node.name
		if !node.isFile {
			name = Info.Sprint(name + "/")
		}

		status := ""
		if node.change != nil {
			status = " " + statusColor(node.change.Statuses).Sprintf("[%s]", strings.Join(node.change.Statuses, ","))
		}

		_, _ = fmt.Fprintf(Out, "%s%s%s%s\n", prefix, connector, name, status)
	}

	childPrefix := prefix
	if node.name != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	keys := sortedChildren(node.children)
	for i, key := range keys {
		printTree(node.children[key], childPrefix, i == len(keys)-1)
	}
}

// sortedChildren puts directories first, then files, each alphabetically.
func sortedChildren(nodes map[string]*treeNode) []string {
	keys := make([]string, 0, len(nodes))
	for key := range nodes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := nodes[keys[i]], nodes[keys[j]]
		if a.isFile != b.isFile {
			return !a.isFile
		}
		return keys[i] < keys[j]
	})
	return keys
}

func statusColor(statuses []string) *color.Color {
	for _, s := range statuses {
		switch s {
		case "deleted":
			return color.New(color.FgRed)
		case "untracked":
			return color.New(color.FgGreen)
		}
	}
	return color.New(color.FgYellow)
}
