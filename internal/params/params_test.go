package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := Defaults()

	assert.Equal(t, "filelu", v.RemoteAlias)
	assert.Equal(t, "YOUR_FILELU_RCLONE_KEY", v.CredentialPlaceholder)
	assert.Equal(t, "/path/to/local/folder", v.LocalPath)
	assert.Equal(t, "/backup/my-files", v.RemotePath)
}

func TestStore_SetReplacesVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"alias", RemoteAlias, "my remote"},
		{"empty alias", RemoteAlias, ""},
		{"credential", CredentialPlaceholder, "  abc123  "},
		{"local path with spaces", LocalPath, "/home/me/My Documents"},
		{"remote path with metacharacters", RemotePath, "/a;rm -rf $HOME|`x`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefaultStore()
			s.Set(tt.field, tt.value)
			assert.Equal(t, tt.value, s.Get(tt.field))
			assert.Equal(t, tt.value, s.Snapshot().Get(tt.field))
		})
	}
}

func TestStore_SettersAreIndependent(t *testing.T) {
	s := NewDefaultStore()

	s.SetRemoteAlias("backup")
	s.SetLocalPath("/src")

	v := s.Snapshot()
	assert.Equal(t, "backup", v.RemoteAlias)
	assert.Equal(t, "/src", v.LocalPath)
	assert.Equal(t, DefaultCredentialPlaceholder, v.CredentialPlaceholder)
	assert.Equal(t, DefaultRemotePath, v.RemotePath)

	s.SetCredentialPlaceholder("k")
	s.SetRemotePath("/dst")
	assert.Equal(t, "k", s.Get(CredentialPlaceholder))
	assert.Equal(t, "/dst", s.Get(RemotePath))
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewDefaultStore()
	snap := s.Snapshot()

	s.SetRemoteAlias("changed")

	assert.Equal(t, DefaultRemoteAlias, snap.RemoteAlias)
	assert.Equal(t, "changed", s.Snapshot().RemoteAlias)
}

func TestStore_OnChange(t *testing.T) {
	s := NewDefaultStore()

	var got []Field
	s.OnChange(func(f Field, v string) {
		got = append(got, f)
	})

	s.SetRemoteAlias("a")
	s.SetRemotePath("b")
	s.Set(Field(99), "ignored")

	require.Len(t, got, 2)
	assert.Equal(t, []Field{RemoteAlias, RemotePath}, got)
}

func TestField_Metadata(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields {
		assert.NotEqual(t, "unknown", f.String())
		assert.NotEqual(t, "Unknown", f.Label())
		assert.False(t, seen[f.String()], "duplicate key %s", f.String())
		seen[f.String()] = true
	}
	assert.Equal(t, "unknown", Field(42).String())
	assert.Equal(t, "", Field(42).Placeholder())
	assert.Equal(t, "", Values{}.Get(Field(42)))
}
