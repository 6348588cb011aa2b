package distfile

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/frederic-klein/mani/internal/manifest"
)

// ErrNoManifest indicates a tarball without a top-level MANIFEST file.
var ErrNoManifest = errors.New("no MANIFEST found in tarball")

// FromTarball reads MANIFEST and MANIFEST.SKIP out of a distribution
// tarball and parses them into a Manifest. Only top-level files (one
// directory deep, the usual dist layout) are considered. A missing
// MANIFEST is an error; a missing MANIFEST.SKIP leaves the skip set
// empty.
func FromTarball(path string) (*manifest.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tarball: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("decompressing tarball: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)

	var manifestLines, skipLines []string
	var hasManifest, hasSkip bool

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tarball: %w", err)
		}

		// Only look at top-level files (one directory deep)
		parts := strings.Split(header.Name, "/")
		if len(parts) != 2 {
			continue
		}

		switch parts[1] {
		case "MANIFEST":
			data, err := io.ReadAll(tarReader)
			if err != nil {
				return nil, fmt.Errorf("reading MANIFEST: %w", err)
			}
			manifestLines = strings.Split(string(data), "\n")
			hasManifest = true
		case "MANIFEST.SKIP":
			data, err := io.ReadAll(tarReader)
			if err != nil {
				return nil, fmt.Errorf("reading MANIFEST.SKIP: %w", err)
			}
			skipLines = strings.Split(string(data), "\n")
			hasSkip = true
		}
	}

	if !hasManifest {
		return nil, fmt.Errorf("%w: %s", ErrNoManifest, path)
	}

	m := manifest.New()
	if err := m.ParseLines(manifest.RoleManifest, manifestLines); err != nil {
		return nil, err
	}
	if hasSkip {
		if err := m.ParseLines(manifest.RoleSkip, skipLines); err != nil {
			return nil, err
		}
	}

	return m, nil
}
