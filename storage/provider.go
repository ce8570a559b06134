// Package storage owns the loaded record collections. Collections are read
// from a source provider once at startup (or on an explicit reload), indexed
// by identifier, and frozen; every accessor returns copies so the loaded
// data can be served to any number of concurrent readers without locking.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Collection names understood by the provider and the dataset loader.
const (
	CollectionCampaigns    = "campaigns"
	CollectionPosts        = "posts"
	CollectionAccounts     = "accounts"
	CollectionThreatScores = "threat_scores"
	CollectionReports      = "reports"
)

// Provider supplies raw collection documents by logical name. The returned
// bytes are always JSON regardless of the on-disk format.
type Provider interface {
	Collection(name string) ([]byte, error)
}

// FileProvider reads collection files from a data directory. For each
// logical name it tries <name>.json, then <name>.yaml, then <name>.yml.
type FileProvider struct {
	dir    string
	logger *zap.SugaredLogger
}

// NewFileProvider creates a provider over the given directory.
func NewFileProvider(dir string, logger *zap.SugaredLogger) *FileProvider {
	return &FileProvider{dir: dir, logger: logger}
}

// Collection returns the JSON document for a logical collection name.
// YAML sources are converted to JSON so schema validation and decoding
// downstream see one format.
func (p *FileProvider) Collection(name string) ([]byte, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(p.dir, name+ext)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if ext == ".json" {
			return data, nil
		}
		return yamlToJSON(data, path)
	}
	return nil, fmt.Errorf("collection %q: %w", name, os.ErrNotExist)
}

// yamlToJSON converts a YAML document to its JSON encoding.
func yamlToJSON(data []byte, path string) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to JSON: %w", path, err)
	}
	return out, nil
}
