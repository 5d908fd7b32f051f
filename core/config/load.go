package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A missing config.yaml
// is not an error; the embedded defaults are used so the shell works
// without running init first.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configFs := afero.NewBasePathFs(afero.NewOsFs(), path)

	configContents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if errors.Is(err, fs.ErrNotExist) {
		out := defaultConfig()
		out.configFs = configFs
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	out.configFs = configFs
	return &out, nil
}
