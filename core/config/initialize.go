package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir, creating it if
// needed. An existing configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string) (string, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	fd, err := fsys.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", configPath, err)
	}
	defer fd.Close()

	if _, err := fd.Write(defaultConfigData); err != nil {
		return "", err
	}
	return configPath, nil
}
