package cli

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rcmd/internal/config"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/spf13/cobra"
)

// ParamFlags holds the per-invocation parameter overrides.
type ParamFlags struct {
	Remote     string
	Key        string
	LocalPath  string
	RemotePath string
}

// flagNames maps each field to its command-line flag.
var flagNames = map[params.Field]string{
	params.RemoteAlias:           "remote",
	params.CredentialPlaceholder: "key",
	params.LocalPath:             "local",
	params.RemotePath:            "remote-path",
}

// AddParamFlags registers --remote, --key, --local and --remote-path as
// persistent flags so every subcommand accepts them.
func AddParamFlags(cmd *cobra.Command, flags *ParamFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.Remote, flagNames[params.RemoteAlias], "", "rclone remote name (default from config, else 'filelu')")
	pf.StringVar(&flags.Key, flagNames[params.CredentialPlaceholder], "", "FileLu rclone key shown in the builder")
	pf.StringVar(&flags.LocalPath, flagNames[params.LocalPath], "", "local folder path used by copy/sync")
	pf.StringVar(&flags.RemotePath, flagNames[params.RemotePath], "", "FileLu path used by copy/sync/ls")
}

func (f *ParamFlags) value(field params.Field) string {
	switch field {
	case params.RemoteAlias:
		return f.Remote
	case params.CredentialPlaceholder:
		return f.Key
	case params.LocalPath:
		return f.LocalPath
	case params.RemotePath:
		return f.RemotePath
	}
	return ""
}

// ApplyParamFlags copies every flag the user actually set onto cfg.
// An explicitly empty flag (--remote "") still overrides.
func ApplyParamFlags(cmd *cobra.Command, flags *ParamFlags, cfg *config.Config) {
	for field, name := range flagNames {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v := flags.value(field)
		switch field {
		case params.RemoteAlias:
			cfg.Params.Remote = v
		case params.CredentialPlaceholder:
			cfg.Params.Key = v
		case params.LocalPath:
			cfg.Params.LocalPath = v
		case params.RemotePath:
			cfg.Params.RemotePath = v
		}
	}
}

// ParseField converts a config key ("remote", "local_path", ...) or flag name
// ("local", "remote-path") to a Field.
func ParseField(name string) (params.Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range params.Fields {
		if n == f.String() || n == flagNames[f] {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown parameter '%s'", name),
		"Valid parameters: "+strings.Join(fieldKeys(), ", "))
}

func fieldKeys() []string {
	keys := make([]string, len(params.Fields))
	for i, f := range params.Fields {
		keys[i] = f.String()
	}
	return keys
}
