// Package params holds the user-editable values that command templates are
// rendered from: the rclone remote alias, the displayed credential, and the
// local and remote paths.
package params

// Default values shown when nothing is configured.
const (
	DefaultRemoteAlias           = "filelu"
	DefaultCredentialPlaceholder = "YOUR_FILELU_RCLONE_KEY"
	DefaultLocalPath             = "/path/to/local/folder"
	DefaultRemotePath            = "/backup/my-files"
)

// Field identifies one of the four editable values.
type Field int

const (
	RemoteAlias Field = iota
	CredentialPlaceholder
	LocalPath
	RemotePath
)

// Fields lists every field in display order.
var Fields = []Field{RemoteAlias, CredentialPlaceholder, LocalPath, RemotePath}

// String returns the config/flag key for the field.
func (f Field) String() string {
	switch f {
	case RemoteAlias:
		return "remote"
	case CredentialPlaceholder:
		return "key"
	case LocalPath:
		return "local_path"
	case RemotePath:
		return "remote_path"
	default:
		return "unknown"
	}
}

// Label is the human-readable input label.
func (f Field) Label() string {
	switch f {
	case RemoteAlias:
		return "Remote Name"
	case CredentialPlaceholder:
		return "FileLu Rclone Key"
	case LocalPath:
		return "Local Folder Path (Source)"
	case RemotePath:
		return "FileLu Remote Path (Destination)"
	default:
		return "Unknown"
	}
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case RemoteAlias:
		return "e.g., filelu"
	case CredentialPlaceholder:
		return DefaultCredentialPlaceholder
	case LocalPath:
		return DefaultLocalPath
	case RemotePath:
		return DefaultRemotePath
	default:
		return ""
	}
}

// Values is an immutable snapshot of the store, consumed by the renderer.
type Values struct {
	RemoteAlias           string
	CredentialPlaceholder string
	LocalPath             string
	RemotePath            string
}

// Defaults returns the built-in parameter values.
func Defaults() Values {
	return Values{
		RemoteAlias:           DefaultRemoteAlias,
		CredentialPlaceholder: DefaultCredentialPlaceholder,
		LocalPath:             DefaultLocalPath,
		RemotePath:            DefaultRemotePath,
	}
}

// Get returns the value of a field.
func (v Values) Get(f Field) string {
	switch f {
	case RemoteAlias:
		return v.RemoteAlias
	case CredentialPlaceholder:
		return v.CredentialPlaceholder
	case LocalPath:
		return v.LocalPath
	case RemotePath:
		return v.RemotePath
	default:
		return ""
	}
}

// Store is the mutable parameter store owned by one session.
// Setters replace values verbatim: no trimming, no validation, no length limit.
// A Store is not safe for concurrent use; it lives on the UI event loop.
type Store struct {
	values   Values
	onChange func(Field, string)
}

// NewStore creates a store seeded with the given values.
func NewStore(initial Values) *Store {
	return &Store{values: initial}
}

// NewDefaultStore creates a store seeded with Defaults().
func NewDefaultStore() *Store {
	return NewStore(Defaults())
}

// OnChange registers a callback invoked after every Set.
func (s *Store) OnChange(fn func(Field, string)) {
	s.onChange = fn
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Values {
	return s.values
}

// Get returns the current value of a field.
func (s *Store) Get(f Field) string {
	return s.values.Get(f)
}

// Set replaces the value of a field. Unknown fields are ignored.
func (s *Store) Set(f Field, value string) {
	switch f {
	case RemoteAlias:
		s.values.RemoteAlias = value
	case CredentialPlaceholder:
		s.values.CredentialPlaceholder = value
	case LocalPath:
		s.values.LocalPath = value
	case RemotePath:
		s.values.RemotePath = value
	default:
		return
	}
	if s.onChange != nil {
		s.onChange(f, value)
	}
}

func (s *Store) SetRemoteAlias(v string)           { s.Set(RemoteAlias, v) }
func (s *Store) SetCredentialPlaceholder(v string) { s.Set(CredentialPlaceholder, v) }
func (s *Store) SetLocalPath(v string)             { s.Set(LocalPath, v) }
func (s *Store) SetRemotePath(v string)            { s.Set(RemotePath, v) }
