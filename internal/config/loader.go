package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".rcmd.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/rcmd"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix is prepended to every environment override, e.g. RCMD_PARAMS_REMOTE.
	EnvPrefix = "RCMD"
)

// Load reads config from the specified path. Environment overrides apply on top.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'rcmd init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .rcmd.yaml in current directory
// 3. .rcmd.yaml in parent directories (stops at git root or home)
// 4. ~/.config/rcmd/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}
	if isGitRoot(cwd) {
		return findGlobal(), nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if isGitRoot(dir) {
			break
		}
	}

	return findGlobal(), nil
}

// GlobalPath returns ~/.config/rcmd/config.yaml, or "" when home is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

func findGlobal() string {
	global := GlobalPath()
	if global == "" {
		return ""
	}
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return ""
}

// LoadOrDefault finds and loads a config file. When none exists it returns
// defaults with environment overrides applied, so the tool works without setup.
// The returned path is empty in that case.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()

	// time.Duration fields accept "1500ms" style strings through viper's
	// default decode hook.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("params.remote", d.Params.Remote)
	v.SetDefault("params.key", d.Params.Key)
	v.SetDefault("params.local_path", d.Params.LocalPath)
	v.SetDefault("params.remote_path", d.Params.RemotePath)
	v.SetDefault("rclone.binary", d.Rclone.Binary)
	v.SetDefault("rclone.mount_point", d.Rclone.MountPoint)
	v.SetDefault("rclone.vfs_cache_mode", d.Rclone.VFSCacheMode)
	v.SetDefault("copy.copied_for", d.Copy.CopiedFor.String())
	v.SetDefault("copy.notify_for", d.Copy.NotifyFor.String())
	v.SetDefault("clipboard.mode", d.Clipboard.Mode)
	v.SetDefault("output.color", d.Output.Color)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
