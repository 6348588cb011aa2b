package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/frederic-klein/mani/internal/logging"
)

// Manifest holds the parsed file list of a distribution together with
// its skip masks and the directory tracking needed to relativize paths
// during skip matching.
//
// A Manifest is not safe for concurrent use: Open and ParseLines replace
// a set in a non-atomic two-step and callers must serialize access.
type Manifest struct {
	manifestPath string
	skipPath     string
	baseDir      string

	entries []string
	skips   []string
	masks   []*regexp.Regexp

	logger zerolog.Logger
}

// New creates an empty Manifest, usable for ParseLines with in-memory
// data instead of files.
func New() *Manifest {
	return &Manifest{
		logger: logging.GetLogger("manifest"),
	}
}

// Load creates a Manifest and eagerly opens whichever of the two paths
// are non-empty. Any load error fails the construction; no
// partially-usable object is returned.
func Load(manifestPath, skipPath string) (*Manifest, error) {
	m := New()
	if manifestPath != "" {
		if err := m.Open(RoleManifest, manifestPath); err != nil {
			return nil, err
		}
	}
	if skipPath != "" {
		if err := m.Open(RoleSkip, skipPath); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Open reads the file at path and replaces the entry set for the given
// role. Relative paths are resolved against the working directory.
//
// Every successful call repoints the tracked base directory at the
// file's containing directory: when the manifest and skip files live in
// different directories, the last open wins.
func (m *Manifest) Open(role Role, path string) error {
	if !role.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNotReadable, path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNotReadable, path, err)
	}

	if err := m.ParseLines(role, strings.Split(string(data), "\n")); err != nil {
		return err
	}

	m.baseDir = filepath.Dir(abs)
	switch role {
	case RoleManifest:
		m.manifestPath = path
	case RoleSkip:
		m.skipPath = path
	}

	m.logger.Debug().
		Str("role", role.String()).
		Str("path", path).
		Str("baseDir", m.baseDir).
		Msg("Loaded file")

	return nil
}

// Entries returns the sorted manifest entries as a copy.
func (m *Manifest) Entries() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Count returns the number of manifest entries.
func (m *Manifest) Count() int {
	return len(m.entries)
}

// SkipMasks returns the sorted skip masks as a copy.
func (m *Manifest) SkipMasks() []string {
	out := make([]string, len(m.skips))
	copy(out, m.skips)
	return out
}

// ManifestPath returns the path the manifest was loaded from, as given
// to Open, or "" when the entries came from ParseLines.
func (m *Manifest) ManifestPath() string {
	return m.manifestPath
}

// SkipPath returns the path the skip list was loaded from, as given to
// Open, or "" when the masks came from ParseLines.
func (m *Manifest) SkipPath() string {
	return m.skipPath
}

// BaseDir returns the directory of the most recently opened file, or ""
// when no file was opened.
func (m *Manifest) BaseDir() string {
	return m.baseDir
}
