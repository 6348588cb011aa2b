package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/mani/internal/manifest"
)

// Report is a YAML-serializable summary of a parsed manifest.
type Report struct {
	ManifestFile string   `yaml:"manifest_file,omitempty"`
	SkipFile     string   `yaml:"skip_file,omitempty"`
	BaseDir      string   `yaml:"base_dir,omitempty"`
	Count        int      `yaml:"count"`
	Entries      []string `yaml:"entries"`
	SkipMasks    []string `yaml:"skip_masks,omitempty"`
	Skipped      []string `yaml:"skipped,omitempty"`
}

// Build assembles a report from a parsed manifest.
func Build(m *manifest.Manifest) *Report {
	return &Report{
		ManifestFile: m.ManifestPath(),
		SkipFile:     m.SkipPath(),
		BaseDir:      m.BaseDir(),
		Count:        m.Count(),
		Entries:      m.Entries(),
		SkipMasks:    m.SkipMasks(),
		Skipped:      m.SkippedEntries(),
	}
}

// Emitter writes manifest reports as YAML.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new report emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes the YAML summary of m.
func (e *Emitter) Emit(m *manifest.Manifest) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(m)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
