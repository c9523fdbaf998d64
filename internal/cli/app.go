package cli

import (
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/config"
	"github.com/rileyhilliard/rcmd/internal/copier"
	"github.com/rileyhilliard/rcmd/internal/logger"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

// app is the resolved state one command invocation works with.
type app struct {
	cfg        *config.Config
	configPath string // empty when running on defaults
	values     params.Values
	catalog    *catalog.Catalog
	clip       clipboard.Clipboard
}

// load resolves config, flag overrides, output styling and the clipboard.
func (o *rootOptions) load(cmd *cobra.Command) (*app, error) {
	cfg, path, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}

	ApplyParamFlags(cmd, &o.params, cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if o.noColor {
		ui.DisableColors()
	} else {
		ui.ApplyColorMode(cfg.Output.Color)
	}

	mode, err := clipboard.ParseMode(cfg.Clipboard.Mode)
	if err != nil {
		return nil, err
	}

	log := logger.NewEnvLogger("[cli]")
	if path == "" {
		log.Debug("no config file, using defaults")
	} else {
		log.Debug("loaded config from %s", path)
	}

	return &app{
		cfg:        cfg,
		configPath: path,
		values:     cfg.ParamValues(),
		catalog:    catalog.New(cfg.CatalogOptions()),
		clip:       o.newClipboard(mode),
	}, nil
}

// newController returns a copy controller with the configured signal
// lifetimes. The caller closes it.
func (a *app) newController() *copier.Controller {
	return copier.New(a.clip, copier.WithDurations(a.cfg.Copy.CopiedFor, a.cfg.Copy.NotifyFor))
}
