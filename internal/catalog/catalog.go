// Package catalog defines the fixed, ordered set of rclone command templates
// and renders them against the current parameter values.
//
// Rendering is a pure function of (catalog, params.Values). Path-bearing
// templates bake the local and remote paths into their pattern first, as
// literal text; every {remoteName} placeholder left in the pattern is then
// replaced with the remote alias. Nothing is quoted or escaped, so paths with
// spaces or shell metacharacters come out exactly as typed.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/params"
)

// Placeholder is the token replaced with the remote alias at render time.
const Placeholder = "{remoteName}"

// Template keys, stable across releases; the CLI addresses commands by key.
const (
	KeyConfig = "config"
	KeyAbout  = "about"
	KeyCopy   = "copy"
	KeySync   = "sync"
	KeyMount  = "mount"
	KeyList   = "ls"
)

// Section groups templates the way the builder lays them out.
type Section int

const (
	SectionSetup Section = iota
	SectionExamples
)

// String returns the section key used by `rcmd list --section`.
func (s Section) String() string {
	switch s {
	case SectionSetup:
		return "setup"
	case SectionExamples:
		return "examples"
	default:
		return "unknown"
	}
}

// Heading is the title shown above the section.
func (s Section) Heading() string {
	switch s {
	case SectionSetup:
		return "1. Rclone Configuration Setup"
	case SectionExamples:
		return "2. File Management Command Examples"
	default:
		return ""
	}
}

// ParseSection converts a section key back to a Section.
func ParseSection(key string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "setup":
		return SectionSetup, nil
	case "examples":
		return SectionExamples, nil
	default:
		return 0, errors.New(errors.ErrTemplate,
			fmt.Sprintf("Unknown section '%s'", key),
			"Valid sections: setup, examples")
	}
}

// Options tunes the literal parts of the patterns.
type Options struct {
	Binary       string // rclone executable name
	MountPoint   string // local mount point for the mount example
	VFSCacheMode string // value for --vfs-cache-mode
}

// DefaultOptions returns the stock rclone/FileLu settings.
func DefaultOptions() Options {
	return Options{
		Binary:       "rclone",
		MountPoint:   "/mnt/filelu",
		VFSCacheMode: "full",
	}
}

// Template is one catalog entry.
type Template struct {
	Key         string
	Title       string
	Section     Section
	PathBearing bool

	pattern func(params.Values) string
}

// Pattern returns the template's pattern with paths already interpolated and
// the placeholder still in place.
func (t Template) Pattern(v params.Values) string {
	return t.pattern(v)
}

// Render produces the concrete command for the given values.
func (t Template) Render(v params.Values) Rendered {
	return Rendered{
		Key:     t.Key,
		Title:   t.Title,
		Section: t.Section,
		Command: Substitute(t.pattern(v), v.RemoteAlias),
	}
}

// Rendered is a template bound to concrete values.
type Rendered struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Section Section `json:"-"`
	Command string  `json:"command"`
}

// Substitute replaces every occurrence of Placeholder with alias.
func Substitute(pattern, alias string) string {
	return strings.ReplaceAll(pattern, Placeholder, alias)
}

// Catalog is the fixed, ordered list of templates.
type Catalog struct {
	opts      Options
	templates []Template
}

// New builds the catalog. Empty option fields fall back to DefaultOptions.
func New(opts Options) *Catalog {
	def := DefaultOptions()
	if opts.Binary == "" {
		opts.Binary = def.Binary
	}
	if opts.MountPoint == "" {
		opts.MountPoint = def.MountPoint
	}
	if opts.VFSCacheMode == "" {
		opts.VFSCacheMode = def.VFSCacheMode
	}

	bin := opts.Binary
	static := func(p string) func(params.Values) string {
		return func(params.Values) string { return p }
	}

	return &Catalog{
		opts: opts,
		templates: []Template{
			{
				Key:     KeyConfig,
				Title:   "Rclone Config Command (Step 1)",
				Section: SectionSetup,
				pattern: static(bin + " config"),
			},
			{
				Key:     KeyAbout,
				Title:   "Get Account Storage Info",
				Section: SectionExamples,
				pattern: static(bin + " about " + Placeholder + ":"),
			},
			{
				Key:         KeyCopy,
				Title:       "Copy Local to FileLu",
				Section:     SectionExamples,
				PathBearing: true,
				pattern: func(v params.Values) string {
					return fmt.Sprintf("%s copy %s %s:%s", bin, v.LocalPath, Placeholder, v.RemotePath)
				},
			},
			{
				Key:         KeySync,
				Title:       "Sync Local to Remote (One-way)",
				Section:     SectionExamples,
				PathBearing: true,
				pattern: func(v params.Values) string {
					return fmt.Sprintf("%s sync %s %s:%s --progress --dry-run", bin, v.LocalPath, Placeholder, v.RemotePath)
				},
			},
			{
				Key:     KeyMount,
				Title:   "Mount FileLu as Local Drive (Linux/Mac)",
				Section: SectionExamples,
				pattern: static(fmt.Sprintf("%s mount %s: %s --vfs-cache-mode %s", bin, Placeholder, opts.MountPoint, opts.VFSCacheMode)),
			},
			{
				Key:         KeyList,
				Title:       "List Remote Directory Contents",
				Section:     SectionExamples,
				PathBearing: true,
				pattern: func(v params.Values) string {
					return fmt.Sprintf("%s ls %s:%s", bin, Placeholder, v.RemotePath)
				},
			},
		},
	}
}

// Default returns a catalog built from DefaultOptions.
func Default() *Catalog {
	return New(DefaultOptions())
}

// Options returns the options the catalog was built with.
func (c *Catalog) Options() Options {
	return c.opts
}

// Templates returns the templates in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Keys returns the template keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.templates))
	for i, t := range c.templates {
		keys[i] = t.Key
	}
	return keys
}

// Lookup finds a template by key.
func (c *Catalog) Lookup(key string) (Template, bool) {
	for _, t := range c.templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// Render binds every template to v, in catalog order.
func (c *Catalog) Render(v params.Values) []Rendered {
	out := make([]Rendered, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t.Render(v))
	}
	return out
}

// RenderSection binds only the templates in one section.
func (c *Catalog) RenderSection(s Section, v params.Values) []Rendered {
	var out []Rendered
	for _, t := range c.templates {
		if t.Section == s {
			out = append(out, t.Render(v))
		}
	}
	return out
}

// RenderKey binds a single template by key.
func (c *Catalog) RenderKey(key string, v params.Values) (Rendered, error) {
	t, ok := c.Lookup(key)
	if !ok {
		return Rendered{}, errors.New(errors.ErrTemplate,
			fmt.Sprintf("Unknown command '%s'", key),
			"Available commands: "+strings.Join(c.Keys(), ", "))
	}
	return t.Render(v), nil
}

// ConfigHint is the guidance shown under the config command.
func (c *Catalog) ConfigHint(v params.Values) string {
	return Substitute(
		fmt.Sprintf("When running '%s config', use '%s' as the name and enter your API Key when prompted.", c.opts.Binary, Placeholder),
		v.RemoteAlias)
}

// CredentialNote is shown under the credential input.
const CredentialNote = "Note: This key is sensitive. This UI is for demonstration purposes only."

// SyncWarning reminds the user what sync does to the destination.
func (c *Catalog) SyncWarning() string {
	return fmt.Sprintf("Warning: run `%s sync` with --dry-run first. sync deletes files on the destination (FileLu) that are not present in the source.", c.opts.Binary)
}
