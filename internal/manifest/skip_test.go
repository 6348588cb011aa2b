package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSkippedAgainstBaseDir(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeFile(t, dir, "MANIFEST", "Changes\nlib/Foo.pm\n")
	skipPath := writeFile(t, dir, "MANIFEST.SKIP", "\\.svn\n^Makefile$\n")

	m, err := Load(manifestPath, skipPath)
	require.NoError(t, err)

	assert.True(t, m.Skipped(filepath.Join(dir, "Makefile")))
	assert.False(t, m.Skipped(filepath.Join(dir, "src", "Makefile")), "anchored mask must not match nested path")
	assert.True(t, m.Skipped(filepath.Join(dir, ".svn", "entries")))
	assert.False(t, m.Skipped(filepath.Join(dir, "lib", "Foo.pm")))
}

func TestSkippedRelativePaths(t *testing.T) {
	m := New()
	require.NoError(t, m.ParseLines(RoleSkip, []string{`^Makefile$`, `\.bak$`}))

	assert.True(t, m.Skipped("Makefile"))
	assert.False(t, m.Skipped("src/Makefile"))
	assert.True(t, m.Skipped("lib/Foo.pm.bak"))
	assert.False(t, m.Skipped("lib/Foo.pm"))
}

func TestSkippedCaseInsensitive(t *testing.T) {
	m := New()
	require.NoError(t, m.ParseLines(RoleSkip, []string{`^makefile$`}))

	assert.True(t, m.Skipped("Makefile"))
	assert.True(t, m.Skipped("MAKEFILE"))
}

func TestSkippedEmptySkipSet(t *testing.T) {
	m := New()
	assert.False(t, m.Skipped("anything"))

	require.NoError(t, m.ParseLines(RoleManifest, []string{"Changes"}))
	assert.False(t, m.Skipped("Changes"))
}

func TestSkippedAbsoluteWithoutBaseDir(t *testing.T) {
	m := New()
	require.NoError(t, m.ParseLines(RoleSkip, []string{`proj`}))

	// No base directory is tracked, so the absolute path is matched raw.
	assert.True(t, m.Skipped("/proj/file.txt"))
	assert.False(t, m.Skipped("/other/file.txt"))
}

func TestSkippedEntries(t *testing.T) {
	m := New()
	require.NoError(t, m.ParseLines(RoleManifest, []string{
		"Changes",
		"Makefile",
		"lib/Foo.pm",
		"lib/Foo.pm.bak",
	}))
	require.NoError(t, m.ParseLines(RoleSkip, []string{`^Makefile$`, `\.bak$`}))

	assert.Equal(t, []string{"Makefile", "lib/Foo.pm.bak"}, m.SkippedEntries())
}

func TestDefaultSkips(t *testing.T) {
	m := New()
	require.NoError(t, m.ParseLines(RoleSkip, DefaultSkips()))

	skipped := []string{
		"lib/.svn/entries",
		"Makefile",
		"MYMETA.json",
		"lib/Foo.pm.bak",
		"lib/Foo.pm~",
		"blib/lib/Foo.pm",
		"pm_to_blib",
		".DS_Store",
	}
	for _, path := range skipped {
		assert.True(t, m.Skipped(path), "expected %q to be skipped", path)
	}

	kept := []string{
		"Changes",
		"MANIFEST",
		"lib/Foo.pm",
		"t/basic.t",
	}
	for _, path := range kept {
		assert.False(t, m.Skipped(path), "expected %q to be kept", path)
	}
}

func TestDefaultSkipsReturnsCopy(t *testing.T) {
	first := DefaultSkips()
	first[0] = "mutated"
	assert.NotEqual(t, first[0], DefaultSkips()[0])
}
