package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/errors"
)

// ColorModes lists the accepted output.color values.
var ColorModes = []string{"auto", "always", "never"}

// Validate checks a loaded config for values the tool cannot work with.
// Parameter values are never validated; any string renders verbatim.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config version %d is newer than this rcmd supports (%d)", cfg.Version, CurrentConfigVersion),
			"Upgrade rcmd, or lower 'version' in your config")
	}

	if err := validateRclone(cfg.Rclone); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid rclone settings", "Fix the 'rclone' block in your config")
	}
	if err := validateCopy(cfg.Copy); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid copy timings", "Use durations like '1500ms' or '2s'")
	}
	if _, err := clipboard.ParseMode(cfg.Clipboard.Mode); err != nil {
		return err
	}
	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid output settings", "Fix the 'output' block in your config")
	}

	return nil
}

func validateRclone(r RcloneConfig) error {
	if strings.TrimSpace(r.Binary) == "" {
		return fmt.Errorf("rclone.binary is empty - set it to 'rclone' or the full path of the binary")
	}
	return nil
}

// MinSignalDuration is the shortest accepted copy signal lifetime. A bare
// integer such as `copied_for: 1500` decodes as nanoseconds and lands below it.
const MinSignalDuration = time.Millisecond

func validateCopy(c CopyConfig) error {
	if err := validateSignalDuration("copy.copied_for", c.CopiedFor); err != nil {
		return err
	}
	return validateSignalDuration("copy.notify_for", c.NotifyFor)
}

func validateSignalDuration(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive (got %v)", key, d)
	}
	if d < MinSignalDuration {
		return fmt.Errorf("%s is %v - durations need a unit, e.g. '1500ms' rather than '1500'", key, d)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	if out.Color == "" {
		return nil
	}
	for _, m := range ColorModes {
		if out.Color == m {
			return nil
		}
	}
	return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
}
