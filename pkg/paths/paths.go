package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/savecrypt/pkg/errors"
)

// Environment variable names
const (
	// EnvSavecryptHome overrides the program directory
	EnvSavecryptHome = "SAVECRYPT_HOME"

	// EnvSavecryptConfigDir overrides the XDG config directory for savecrypt
	EnvSavecryptConfigDir = "SAVECRYPT_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "savecrypt"

	// UserConfigFile is the name of the per-user config file
	UserConfigFile = "config.toml"

	// LocalConfigFile is the name of the config file kept next to the program
	LocalConfigFile = "savecrypt.toml"

	// LogFileName is the name of the log file
	LogFileName = "savecrypt.log"
)

// Paths provides centralized path management for savecrypt
type Paths interface {
	ProgramDir() string
	ProgramFile(name string) string
	UserConfigPath() string
	LocalConfigPath() string
	LogFilePath() string
}

type paths struct {
	// programDir is where the executable (and its companion files) live
	programDir string

	xdgConfig string
	xdgState  string
}

// New creates a Paths rooted at programDir. An empty programDir is resolved
// from SAVECRYPT_HOME, then from the running executable's location.
func New(programDir string) (Paths, error) {
	p := &paths{}

	if programDir == "" {
		dir, err := findProgramDir()
		if err != nil {
			return nil, err
		}
		programDir = dir
	}

	abs, err := filepath.Abs(expandHome(programDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for program directory")
	}
	p.programDir = abs

	if configDir := os.Getenv(EnvSavecryptConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// findProgramDir returns the directory holding the running executable,
// following symlinks so an installed link still finds its companion files.
func findProgramDir() (string, error) {
	if home := os.Getenv(EnvSavecryptHome); home != "" {
		return home, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to locate the running program")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func (p *paths) ProgramDir() string { return p.programDir }

// ProgramFile resolves name against the program directory. Absolute names
// are returned unchanged.
func (p *paths) ProgramFile(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.programDir, name)
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

func (p *paths) LocalConfigPath() string {
	return filepath.Join(p.programDir, LocalConfigFile)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
