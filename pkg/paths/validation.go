package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdsync/pkg/errors"
)

const invalidNameChars = ":*?\"<>|"

// ValidatePath performs basic validation on a path.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateTitle ensures a title can be used as a single path segment
// under the remote base directory.
func ValidateTitle(title string) error {
	if title == "" {
		return errors.New(errors.ErrInvalidInput, "title cannot be empty")
	}

	if strings.ContainsAny(title, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "title %q cannot contain path separators", title)
	}

	if title == "." || title == ".." {
		return errors.New(errors.ErrInvalidInput, "title cannot be '.' or '..'")
	}

	return validateNameChars("title", title)
}

// ValidateRemoteFilename ensures a remote filename stays inside its title
// directory. Nested names such as "slot1/save.dat" are allowed.
func ValidateRemoteFilename(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "remote filename cannot be empty")
	}

	if filepath.IsAbs(name) {
		return errors.Newf(errors.ErrInvalidInput, "remote filename %q must be relative", name)
	}

	cleaned := filepath.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "remote filename %q escapes its title directory", name)
	}

	return validateNameChars("remote filename", name)
}

func validateNameChars(kind, name string) error {
	if strings.ContainsAny(name, invalidNameChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"%s contains invalid characters: %s", kind, invalidNameChars)
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "%s contains control characters", kind)
		}
	}

	return nil
}
