package paths

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/mitchellh/go-homedir"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for sdsync
	EnvConfigDir = "SDSYNC_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for sdsync
	EnvStateDir = "SDSYNC_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for sdsync-specific files
	AppDirName = "sdsync"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "sdsync.log"

	// NamespaceDirPerm is the mode used when creating a title directory
	NamespaceDirPerm fs.FileMode = 0755
)

// Paths provides the locations of sdsync's own files
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the XDG directories, honoring the SDSYNC_* overrides.
func New() Paths {
	xdg.Reload()

	p := &paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	}
	return p
}

func (p *paths) ConfigDir() string { return p.configDir }

func (p *paths) StateDir() string { return p.stateDir }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory. Paths it
// cannot expand are returned unchanged.
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// RemotePath returns remoteBase/title/filename. It is a pure join and
// never touches the filesystem.
func RemotePath(remoteBase, title, filename string) string {
	return filepath.Join(remoteBase, title, filename)
}

// NamespaceDir returns remoteBase/title.
func NamespaceDir(remoteBase, title string) string {
	return filepath.Join(remoteBase, title)
}

// CheckRemoteBase fails with ErrRemoteBaseMissing unless remoteBase is an
// existing directory.
func CheckRemoteBase(fsys types.FS, remoteBase string) error {
	info, err := fsys.Stat(remoteBase)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR) {
			return errors.Newf(errors.ErrRemoteBaseMissing,
				"remote dir %s does not exist", remoteBase).
				WithDetail("remote_dir", remoteBase)
		}
		// Unreadable counts as missing too; the cause stays attached.
		return errors.Wrapf(err, errors.ErrRemoteBaseMissing,
			"remote dir %s is not accessible", remoteBase).
			WithDetail("remote_dir", remoteBase)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrRemoteBaseMissing,
			"remote dir %s does not exist", remoteBase).
			WithDetail("remote_dir", remoteBase).
			WithDetail("reason", "not a directory")
	}
	return nil
}

// EnsureNamespace makes sure remoteBase/title exists and returns it.
// remoteBase itself must already be a directory; it is never created.
// A title directory created concurrently by someone else counts as success.
func EnsureNamespace(fsys types.FS, remoteBase, title string) (string, error) {
	if err := CheckRemoteBase(fsys, remoteBase); err != nil {
		return "", err
	}

	titleDir := NamespaceDir(remoteBase, title)
	err := fsys.Mkdir(titleDir, NamespaceDirPerm)
	if err == nil {
		return titleDir, nil
	}
	if !stderrors.Is(err, fs.ErrExist) {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create title dir %s", titleDir)
	}

	info, err := fsys.Stat(titleDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot access title dir %s", titleDir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrDirCreate, "title dir %s exists but is not a directory", titleDir)
	}
	return titleDir, nil
}
