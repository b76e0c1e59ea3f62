package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Project config file names, in lookup order.
const (
	PackageJSONFileName = "package.json"
	ProjectTOMLFileName = ".new-branch.toml"
	ProjectYAMLFileName = ".new-branch.yaml"
	ProjectYMLFileName  = ".new-branch.yml"
)

// ProjectConfig holds per-project settings.
type ProjectConfig struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
	// Path is the file the settings were read from.
	Path string `toml:"-" yaml:"-"`
}

// LoadProject looks for project settings in dir. The first file that sets a
// non-blank pattern wins. Returns nil (no error) if no file does.
//
// package.json is read leniently: an unreadable or malformed file, or a
// "new-branch" entry of the wrong shape, counts as no setting. The
// dedicated .new-branch files are strict and report parse errors.
func LoadProject(dir string) (*ProjectConfig, error) {
	if pc := loadPackageJSON(filepath.Join(dir, PackageJSONFileName)); pc != nil {
		return pc, nil
	}

	loaders := []struct {
		name   string
		decode func([]byte, any) error
	}{
		{ProjectTOMLFileName, toml.Unmarshal},
		{ProjectYAMLFileName, yaml.Unmarshal},
		{ProjectYMLFileName, yaml.Unmarshal},
	}
	for _, l := range loaders {
		pc, err := loadProjectFile(filepath.Join(dir, l.name), l.decode)
		if err != nil {
			return nil, err
		}
		if pc != nil {
			return pc, nil
		}
	}

	return nil, nil
}

func loadProjectFile(path string, decode func([]byte, any) error) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read project config %s: %w", path, err)
	}

	var pc ProjectConfig
	if err := decode(data, &pc); err != nil {
		return nil, fmt.Errorf("failed to parse project config %s: %w", path, err)
	}
	if strings.TrimSpace(pc.Pattern) == "" {
		return nil, nil
	}
	pc.Path = path
	return &pc, nil
}

func loadPackageJSON(path string) *ProjectConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}
	var section map[string]any
	if err := json.Unmarshal(pkg["new-branch"], &section); err != nil {
		return nil
	}
	pattern, ok := section["pattern"].(string)
	if !ok || strings.TrimSpace(pattern) == "" {
		return nil
	}
	return &ProjectConfig{Pattern: pattern, Path: path}
}
