package models

type (
	// LineDelta summarizes a numstat diff.
	LineDelta struct {
		Files     int
		Additions int
		Deletions int
	}

	// ChangeSet is a snapshot of the working tree. The slots are independent
	// views: a path may be staged and modified at the same time.
	ChangeSet struct {
		Untracked []string
		Modified  []string
		Staged    []string
		Deleted   []string
		Renamed   []string
		Delta     LineDelta
	}

	// StatusSlot pairs a slot name with its paths, in collection order.
	StatusSlot struct {
		Name  string
		Paths []string
	}

	// RecentCommitHistory holds one-line summaries, newest first.
	RecentCommitHistory []string
)

// Slots returns the five status slots in a fixed order.
func (c ChangeSet) Slots() []StatusSlot {
	return []StatusSlot{
		{Name: "untracked", Paths: c.Untracked},
		{Name: "modified", Paths: c.Modified},
		{Name: "staged", Paths: c.Staged},
		{Name: "deleted", Paths: c.Deleted},
		{Name: "renamed", Paths: c.Renamed},
	}
}

// AllPaths returns every non-empty path across all slots, duplicates included.
func (c ChangeSet) AllPaths() []string {
	paths := make([]string, 0, len(c.Untracked)+len(c.Modified)+len(c.Staged)+len(c.Deleted)+len(c.Renamed))
	for _, slot := range c.Slots() {
		for _, p := range slot.Paths {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// Files returns the distinct touched paths in first-seen order.
func (c ChangeSet) Files() []string {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	for _, p := range c.AllPaths() {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	return files
}

// ExistingFiles returns the distinct paths not reported as deleted.
func (c ChangeSet) ExistingFiles() []string {
	deleted := make(map[string]struct{}, len(c.Deleted))
	for _, p := range c.Deleted {
		deleted[p] = struct{}{}
	}
	files := make([]string, 0)
	for _, p := range c.Files() {
		if _, ok := deleted[p]; !ok {
			files = append(files, p)
		}
	}
	return files
}

// HasChanges reports whether any slot holds a path.
func (c ChangeSet) HasChanges() bool {
	return len(c.AllPaths()) > 0
}

// Recent returns at most n entries of the history.
func (h RecentCommitHistory) Recent(n int) []string {
	if n < 0 || len(h) <= n {
		return h
	}
	return h[:n]
}
