package manifest

import (
	"fmt"
	"regexp"
	"sort"
)

// tokenRe captures the first whitespace-delimited token on a line when
// that token does not begin with "#". Blank lines, comment lines and
// whitespace-only lines do not match; anything after the first token is
// treated as an inline comment and discarded.
var tokenRe = regexp.MustCompile(`^\s*([^\s#]\S*)`)

// ParseLines parses the given lines and fully replaces the entry set for
// the given role. Entries are the distinct first tokens in lexicographic
// order; duplicates are collapsed and reported as a warning. For RoleSkip
// the entries are also compiled as case-insensitive regexps.
func (m *Manifest) ParseLines(role Role, lines []string) error {
	if !role.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	if lines == nil {
		return fmt.Errorf("%w: nil line sequence", ErrMalformedInput)
	}

	freq := make(map[string]int, len(lines))
	for _, line := range lines {
		matches := tokenRe.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		freq[matches[1]]++
	}

	entries := make([]string, 0, len(freq))
	for token, count := range freq {
		if count > 1 {
			m.logger.Warn().
				Str("role", role.String()).
				Str("entry", token).
				Int("count", count).
				Msg("Duplicate entry collapsed")
		}
		entries = append(entries, token)
	}
	sort.Strings(entries)

	switch role {
	case RoleManifest:
		m.entries = entries
	case RoleSkip:
		masks, err := compileMasks(entries)
		if err != nil {
			return err
		}
		m.skips = entries
		m.masks = masks
	}

	return nil
}
