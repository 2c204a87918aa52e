// Package config loads the optional fracto YAML configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/afuentes/fracto/internal/domain"
)

// Load reads and validates a config file at path.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// LoadDefault looks for fracto.yaml in the working directory, then
// config.yaml under the user config dir. A missing file is not an error and
// yields the defaults; a present-but-invalid file is.
func LoadDefault() (domain.Config, error) {
	for _, path := range defaultPaths() {
		cfg, err := Load(path)
		if err == nil {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return domain.Config{}, err
	}
	return domain.DefaultConfig(), nil
}

func defaultPaths() []string {
	paths := []string{"fracto.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fracto", "config.yaml"))
	}
	return paths
}
