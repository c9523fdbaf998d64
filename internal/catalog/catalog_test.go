package catalog

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Defaults(t *testing.T) {
	got := Default().Render(params.Defaults())

	want := []Rendered{
		{Key: KeyConfig, Title: "Rclone Config Command (Step 1)", Section: SectionSetup, Command: "rclone config"},
		{Key: KeyAbout, Title: "Get Account Storage Info", Section: SectionExamples, Command: "rclone about filelu:"},
		{Key: KeyCopy, Title: "Copy Local to FileLu", Section: SectionExamples, Command: "rclone copy /path/to/local/folder filelu:/backup/my-files"},
		{Key: KeySync, Title: "Sync Local to Remote (One-way)", Section: SectionExamples, Command: "rclone sync /path/to/local/folder filelu:/backup/my-files --progress --dry-run"},
		{Key: KeyMount, Title: "Mount FileLu as Local Drive (Linux/Mac)", Section: SectionExamples, Command: "rclone mount filelu: /mnt/filelu --vfs-cache-mode full"},
		{Key: KeyList, Title: "List Remote Directory Contents", Section: SectionExamples, Command: "rclone ls filelu:/backup/my-files"},
	}
	assert.Equal(t, want, got)
}

func TestRender_EmptyAlias(t *testing.T) {
	v := params.Defaults()
	v.RemoteAlias = ""

	r, err := Default().RenderKey(KeyAbout, v)
	require.NoError(t, err)
	assert.Equal(t, "rclone about :", r.Command)
}

func TestRender_AliasAffectsEveryPlaceholder(t *testing.T) {
	v := params.Defaults()
	v.RemoteAlias = "backup"

	for _, r := range Default().Render(v) {
		assert.NotContains(t, r.Command, Placeholder, r.Key)
		if r.Key != KeyConfig {
			assert.Contains(t, r.Command, "backup:", r.Key)
		}
	}
}

func TestRender_PathsAreLiteral(t *testing.T) {
	tests := []struct {
		name   string
		local  string
		remote string
	}{
		{"spaces", "/home/me/My Documents", "/Backups/Photos 2024"},
		{"shell metacharacters", "/tmp/$(whoami);ls", "/x|y&&z `id`"},
		{"quotes", `/a "b" 'c'`, `/d\e`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := params.Defaults()
			v.LocalPath = tt.local
			v.RemotePath = tt.remote
			c := Default()

			cp, err := c.RenderKey(KeyCopy, v)
			require.NoError(t, err)
			assert.Equal(t, "rclone copy "+tt.local+" filelu:"+tt.remote, cp.Command)

			sy, err := c.RenderKey(KeySync, v)
			require.NoError(t, err)
			assert.Equal(t, "rclone sync "+tt.local+" filelu:"+tt.remote+" --progress --dry-run", sy.Command)

			ls, err := c.RenderKey(KeyList, v)
			require.NoError(t, err)
			assert.Equal(t, "rclone ls filelu:"+tt.remote, ls.Command)
		})
	}
}

func TestRender_PathChangesOnlyTouchPathBearing(t *testing.T) {
	c := Default()
	before := c.Render(params.Defaults())

	v := params.Defaults()
	v.LocalPath = "/elsewhere"
	v.RemotePath = "/other"
	after := c.Render(v)

	require.Len(t, after, len(before))
	for i := range before {
		tmpl, ok := c.Lookup(before[i].Key)
		require.True(t, ok)
		if tmpl.PathBearing {
			assert.NotEqual(t, before[i].Command, after[i].Command, before[i].Key)
		} else {
			assert.Equal(t, before[i].Command, after[i].Command, before[i].Key)
		}
	}
}

func TestRender_PathContainingPlaceholderIsSubstituted(t *testing.T) {
	v := params.Defaults()
	v.LocalPath = "/data/{remoteName}"

	r, err := Default().RenderKey(KeyCopy, v)
	require.NoError(t, err)
	assert.Equal(t, "rclone copy /data/filelu filelu:/backup/my-files", r.Command)
}

func TestRender_Idempotent(t *testing.T) {
	c := Default()
	v := params.Values{RemoteAlias: "r", LocalPath: "/l", RemotePath: "/r"}

	assert.Equal(t, c.Render(v), c.Render(v))
}

func TestRenderKey_Unknown(t *testing.T) {
	_, err := Default().RenderKey("mkdir", params.Defaults())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTemplate))
	assert.Contains(t, err.Error(), "config, about, copy, sync, mount, ls")
}

func TestRenderSection(t *testing.T) {
	c := Default()
	v := params.Defaults()

	setup := c.RenderSection(SectionSetup, v)
	require.Len(t, setup, 1)
	assert.Equal(t, KeyConfig, setup[0].Key)

	examples := c.RenderSection(SectionExamples, v)
	require.Len(t, examples, 5)
	assert.Equal(t, []string{KeyAbout, KeyCopy, KeySync, KeyMount, KeyList},
		[]string{examples[0].Key, examples[1].Key, examples[2].Key, examples[3].Key, examples[4].Key})
}

func TestNew_Options(t *testing.T) {
	c := New(Options{Binary: "/usr/local/bin/rclone", MountPoint: "/Volumes/filelu", VFSCacheMode: "writes"})
	v := params.Defaults()

	r, err := c.RenderKey(KeyMount, v)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/rclone mount filelu: /Volumes/filelu --vfs-cache-mode writes", r.Command)

	r, err = c.RenderKey(KeyConfig, v)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/rclone config", r.Command)
}

func TestNew_EmptyOptionsFallBack(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultOptions(), c.Options())
}

func TestCatalog_TitlesUniqueAndOrderStable(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{KeyConfig, KeyAbout, KeyCopy, KeySync, KeyMount, KeyList}, c.Keys())

	seen := make(map[string]bool)
	for _, tmpl := range c.Templates() {
		assert.False(t, seen[tmpl.Title], "duplicate title %q", tmpl.Title)
		seen[tmpl.Title] = true
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	c := Default()
	ts := c.Templates()
	ts[0].Title = "mutated"

	assert.Equal(t, "Rclone Config Command (Step 1)", c.Templates()[0].Title)
}

func TestConfigHint(t *testing.T) {
	v := params.Defaults()
	v.RemoteAlias = "mylu"

	hint := Default().ConfigHint(v)
	assert.Contains(t, hint, "'rclone config'")
	assert.Contains(t, hint, "use 'mylu' as the name")
	assert.NotContains(t, hint, Placeholder)
}

func TestSyncWarning(t *testing.T) {
	w := Default().SyncWarning()
	assert.True(t, strings.Contains(w, "--dry-run"))
	assert.True(t, strings.Contains(w, "rclone sync"))
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("Setup")
	require.NoError(t, err)
	assert.Equal(t, SectionSetup, s)

	s, err = ParseSection("examples")
	require.NoError(t, err)
	assert.Equal(t, SectionExamples, s)

	_, err = ParseSection("other")
	assert.True(t, errors.IsCode(err, errors.ErrTemplate))

	assert.Equal(t, "unknown", Section(9).String())
	assert.Equal(t, "", Section(9).Heading())
}
