package config

import (
	"os"
	"strings"

	domainErrors "github.com/commitpush/commitpush/internal/errors"
	"github.com/commitpush/commitpush/internal/models"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the per-repository metadata file read by deploy.
const ManifestFile = ".commitpush.yaml"

// LoadManifest reads repository metadata from a YAML file. A missing file
// yields empty metadata.
func LoadManifest(path string) (models.RepositoryMetadata, error) {
	var meta models.RepositoryMetadata

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, domainErrors.ErrManifestInvalid.WithError(err).WithContext("path", path)
	}

	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, domainErrors.ErrManifestInvalid.WithError(err).WithContext("path", path)
	}

	meta.Name = strings.TrimSpace(meta.Name)
	topics := meta.Topics[:0]
	for _, topic := range meta.Topics {
		if topic = strings.ToLower(strings.TrimSpace(topic)); topic != "" {
			topics = append(topics, topic)
		}
	}
	meta.Topics = topics

	return meta, nil
}

// SaveManifest writes metadata back so later deploys reuse it.
func SaveManifest(path string, meta models.RepositoryMetadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return domainErrors.ErrManifestInvalid.WithError(err)
	}
	return os.WriteFile(path, data, 0644)
}
