// Package genconfig prints or writes an sdsync config file.
package genconfig

import (
	"github.com/arthur-debert/sdsync/pkg/config"
	"github.com/arthur-debert/sdsync/pkg/logging"
	"github.com/arthur-debert/sdsync/pkg/paths"
	"github.com/spf13/afero"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Write stores the content instead of only returning it
	Write bool
	// Force replaces an existing config file
	Force bool
	// Path defaults to the user config file
	Path string
	// Effective, when set, is rendered instead of the commented defaults
	Effective *config.Config
	// FileSystem defaults to the OS filesystem
	FileSystem afero.Fs
}

// GenConfigResult holds the generated content and where it went
type GenConfigResult struct {
	ConfigContent string
	FileWritten   string
}

// GenConfig produces the config content and optionally writes it.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	if opts.Effective != nil {
		rendered, err := config.Render(opts.Effective)
		if err != nil {
			return nil, err
		}
		content = string(rendered)
	}

	result := &GenConfigResult{ConfigContent: content}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	target := opts.Path
	if target == "" {
		target = paths.New().ConfigFilePath()
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if err := config.WriteConfigFile(fsys, target, []byte(content), opts.Force); err != nil {
		return result, err
	}
	logger.Info().Str("path", target).Msg("Written config file")
	result.FileWritten = target
	return result, nil
}
