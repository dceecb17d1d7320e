package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// GenerateConfigContent returns the defaults file with every value
// commented out, ready to be edited.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// Render encodes cfg as TOML.
func Render(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// WriteConfigFile writes content to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteConfigFile(fsys afero.Fs, path string, content []byte, force bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path)
	}
	if exists && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file '%s' exists. use --force to force", path).
			WithDetail("path", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fsys, path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [remote], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
