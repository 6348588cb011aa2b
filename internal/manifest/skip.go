package manifest

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Skipped reports whether path matches any skip mask. Absolute paths are
// made relative to the tracked base directory when one is known;
// otherwise the path is matched as given. An empty skip set never
// matches.
func (m *Manifest) Skipped(path string) bool {
	candidate := m.relativize(path)
	for _, mask := range m.masks {
		if mask.MatchString(candidate) {
			return true
		}
	}
	return false
}

// SkippedEntries returns the manifest entries matched by the skip masks,
// in manifest order.
func (m *Manifest) SkippedEntries() []string {
	var out []string
	for _, entry := range m.entries {
		if m.Skipped(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// relativize converts an absolute path to a slash-separated path
// relative to the tracked base directory. Relative inputs and inputs
// with no known base directory pass through unchanged apart from slash
// normalization.
func (m *Manifest) relativize(path string) string {
	if m.baseDir == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(m.baseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// compileMasks compiles skip masks as case-insensitive regexps. Masks
// are matched exactly as written, with no implicit anchoring.
func compileMasks(patterns []string) ([]*regexp.Regexp, error) {
	masks := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
		}
		masks = append(masks, re)
	}
	return masks, nil
}

// defaultSkips is the conventional skip list applied to distributions
// that ship no MANIFEST.SKIP: version control litter, build droppings
// and editor backup files.
var defaultSkips = []string{
	// version control
	`\bRCS\b`,
	`\bCVS\b`,
	`\bSCCS\b`,
	`,v$`,
	`\B\.svn\b`,
	`\B\.git\b`,
	`\B\.gitignore\b`,
	`\b_darcs\b`,
	`\B\.cvsignore$`,

	// MakeMaker and Module::Build droppings
	`\bMANIFEST\.bak`,
	`\bMakefile$`,
	`\bblib/`,
	`\bMakeMaker-\d`,
	`\bpm_to_blib\.ts$`,
	`\bpm_to_blib$`,
	`\bBuild$`,
	`\b_build/`,
	`^MYMETA\.`,

	// temp and backup files
	`~$`,
	`\.old$`,
	`\#$`,
	`\b\.#`,
	`\.bak$`,
	`\.tmp$`,
	`\.rej$`,

	// OS metadata
	`\B\.DS_Store`,
	`\B\._`,
}

// DefaultSkips returns the default skip mask list as a copy. Callers
// install it through ParseLines(RoleSkip, ...) when a distribution has
// no skip file of its own.
func DefaultSkips() []string {
	out := make([]string, len(defaultSkips))
	copy(out, defaultSkips)
	return out
}
