package models

type (
	// RepositoryMetadata describes a repository to create on the hosting side.
	RepositoryMetadata struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Private     bool     `yaml:"private"`
		Topics      []string `yaml:"topics"`
	}

	// RemoteRepository is what the hosting API returned after creation.
	RemoteRepository struct {
		Name     string
		FullName string
		SSHURL   string
		HTTPSURL string
		WebURL   string
	}
)

// CloneURL picks the SSH or HTTPS remote.
func (r RemoteRepository) CloneURL(useSSH bool) string {
	if useSSH && r.SSHURL != "" {
		return r.SSHURL
	}
	return r.HTTPSURL
}
