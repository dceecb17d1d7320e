package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables mapped onto config keys:
	// SDSYNC_REMOTE_DIR sets remote.dir.
	EnvPrefix = "SDSYNC_"

	// EnvLegacyRemoteDir is the historical remote base variable. It takes
	// precedence over every other source.
	EnvLegacyRemoteDir = "sdsync_remote_dir"
)

// LoadDefault loads configuration using the user's config.toml.
func LoadDefault() (*Config, error) {
	return Load(paths.New().ConfigFilePath())
}

// Load layers the embedded defaults, configFile (skipped when missing),
// SDSYNC_* variables and the legacy remote dir variable, then resolves
// remote.dir to an absolute path.
func Load(configFile string) (*Config, error) {
	k, err := load(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(configFile string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
		} else if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config %s", configFile)
		}
	}

	// 3. SDSYNC_* env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Legacy remote dir
	if dir := os.Getenv(EnvLegacyRemoteDir); dir != "" {
		legacy := map[string]interface{}{"remote.dir": dir}
		if err := k.Load(confmap.Provider(legacy, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load legacy env var")
		}
	}

	return k, nil
}

// envKey maps SDSYNC_REMOTE_DIR to remote.dir. Only the first underscore
// separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func postProcessConfig(cfg *Config) error {
	if cfg.Remote.Dir == "" {
		return errors.New(errors.ErrConfigLoad, "remote.dir is empty")
	}

	dir, err := filepath.Abs(paths.ExpandHome(cfg.Remote.Dir))
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot resolve remote dir %s", cfg.Remote.Dir)
	}
	cfg.Remote.Dir = dir

	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}
	return nil
}
