package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workspace is the optional per-project configuration file (.mdslc.yaml)
// the CLI consults for defaults, so a user invoking `mdslc translate
// foo.mth` doesn't have to repeat `--backend` on every call.
type Workspace struct {
	Backend         string            `yaml:"backend"`
	ComplexityMode  string            `yaml:"complexity_mode"`
	BackendOptions  map[string]string `yaml:"backend_options"`
	CacheFile       string            `yaml:"cache_file"`
}

// LoadWorkspace reads and parses a .mdslc.yaml file at path. A missing
// file is not an error: it yields a zero-value Workspace, so every field
// falls back to its caller's own default.
func LoadWorkspace(path string) (Workspace, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Workspace{}, nil
	}
	if err != nil {
		return Workspace{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return Workspace{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return ws, nil
}
