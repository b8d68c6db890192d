package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/placeholder/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Fixtures is the on-disk layout of an offline dataset.
type Fixtures struct {
	Users    []domain.Record `yaml:"users" json:"users"`
	Posts    []domain.Record `yaml:"posts" json:"posts"`
	Albums   []domain.Record `yaml:"albums" json:"albums"`
	Todos    []domain.Record `yaml:"todos" json:"todos"`
	Comments []domain.Record `yaml:"comments" json:"comments"`
}

// LoadFixtures reads a dataset file (YAML or JSON) into a new Source.
func LoadFixtures(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var fx Fixtures
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &fx); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &fx); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	s := NewSource()
	s.Add(domain.ResourceUsers, fx.Users...)
	s.Add(domain.ResourcePosts, fx.Posts...)
	s.Add(domain.ResourceAlbums, fx.Albums...)
	s.Add(domain.ResourceTodos, fx.Todos...)
	s.Add(domain.ResourceComments, fx.Comments...)
	return s, nil
}
