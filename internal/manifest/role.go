package manifest

// Role selects which of the two entry lists an operation targets.
type Role uint8

const (
	// RoleManifest targets the list of distribution file paths.
	RoleManifest Role = iota + 1
	// RoleSkip targets the list of regular-expression skip masks.
	RoleSkip
)

// valid reports whether the role is one of the two supported values.
func (r Role) valid() bool {
	return r == RoleManifest || r == RoleSkip
}

func (r Role) String() string {
	switch r {
	case RoleManifest:
		return "manifest"
	case RoleSkip:
		return "skip"
	default:
		return "unknown"
	}
}
