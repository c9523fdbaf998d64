package config

import (
	"time"

	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/params"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .rcmd.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Params    ParamsConfig    `yaml:"params" mapstructure:"params"`
	Rclone    RcloneConfig    `yaml:"rclone" mapstructure:"rclone"`
	Copy      CopyConfig      `yaml:"copy" mapstructure:"copy"`
	Clipboard ClipboardConfig `yaml:"clipboard" mapstructure:"clipboard"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// ParamsConfig seeds the parameter store. Values are used verbatim.
type ParamsConfig struct {
	// Remote is the rclone remote alias substituted for {remoteName}.
	Remote string `yaml:"remote" mapstructure:"remote"`

	// Key is the FileLu credential placeholder. It is never rendered into a
	// command; it only pre-fills the builder input.
	Key string `yaml:"key" mapstructure:"key"`

	// LocalPath and RemotePath feed the path-bearing example commands.
	LocalPath  string `yaml:"local_path" mapstructure:"local_path"`
	RemotePath string `yaml:"remote_path" mapstructure:"remote_path"`
}

// RcloneConfig tweaks the literal parts of the command templates.
type RcloneConfig struct {
	// Binary is the program name at the start of every command.
	Binary string `yaml:"binary" mapstructure:"binary"`

	// MountPoint is the local directory used by the mount example.
	MountPoint string `yaml:"mount_point" mapstructure:"mount_point"`

	// VFSCacheMode is passed to --vfs-cache-mode in the mount example.
	VFSCacheMode string `yaml:"vfs_cache_mode" mapstructure:"vfs_cache_mode"`
}

// CopyConfig controls how long the copy signals stay up.
type CopyConfig struct {
	CopiedFor time.Duration `yaml:"copied_for" mapstructure:"copied_for"`
	NotifyFor time.Duration `yaml:"notify_for" mapstructure:"notify_for"`
}

// ClipboardConfig picks the clipboard backend.
type ClipboardConfig struct {
	// Mode is one of: auto, native, osc52, none.
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is one of: auto, always, never.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	d := params.Defaults()
	opts := catalog.DefaultOptions()
	return &Config{
		Version: CurrentConfigVersion,
		Params: ParamsConfig{
			Remote:     d.RemoteAlias,
			Key:        d.CredentialPlaceholder,
			LocalPath:  d.LocalPath,
			RemotePath: d.RemotePath,
		},
		Rclone: RcloneConfig{
			Binary:       opts.Binary,
			MountPoint:   opts.MountPoint,
			VFSCacheMode: opts.VFSCacheMode,
		},
		Copy: CopyConfig{
			CopiedFor: 1500 * time.Millisecond,
			NotifyFor: 2000 * time.Millisecond,
		},
		Clipboard: ClipboardConfig{
			Mode: "auto",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// ParamValues converts the params block into store values.
func (c *Config) ParamValues() params.Values {
	return params.Values{
		RemoteAlias:           c.Params.Remote,
		CredentialPlaceholder: c.Params.Key,
		LocalPath:             c.Params.LocalPath,
		RemotePath:            c.Params.RemotePath,
	}
}

// CatalogOptions converts the rclone block into catalog options.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Binary:       c.Rclone.Binary,
		MountPoint:   c.Rclone.MountPoint,
		VFSCacheMode: c.Rclone.VFSCacheMode,
	}
}
