package config

import (
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir unless one already
// exists, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	if _, err := os.Stat(path); err == nil {
		logger.Printf("Configuration already exists at %s", path)
		return Load(dir)
	}

	if err := os.WriteFile(path, defaultConfigData, 0644); err != nil {
		return nil, err
	}
	logger.Printf("Wrote %s", path)

	return Load(dir)
}
