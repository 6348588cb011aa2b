package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/mani/internal/config"
	"github.com/frederic-klein/mani/internal/distfile"
	"github.com/frederic-klein/mani/internal/logging"
	"github.com/frederic-klein/mani/internal/manifest"
	"github.com/frederic-klein/mani/internal/report"
)

var (
	manifestPath string
	skipPath     string
	distPath     string
	outputPath   string
	countOnly    bool
	defaultSkips bool
	verbose      bool
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mani: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "mani",
		Short: "Query MANIFEST and MANIFEST.SKIP files of Perl distributions",
		Long:  "mani parses distribution manifests and their skip lists, answering which files belong to a distribution and which paths the skip masks exclude.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			logging.Setup(level)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "f", cfg.ManifestFile, "Manifest file path")
	rootCmd.PersistentFlags().StringVarP(&skipPath, "skip", "s", cfg.SkipFile, "Skip file path")
	rootCmd.PersistentFlags().StringVarP(&distPath, "dist", "d", "", "Read manifest files from a distribution tarball instead")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print manifest entries",
		RunE:  runList,
	}
	listCmd.Flags().BoolVar(&countOnly, "count", false, "Print only the entry count")

	skipcheckCmd := &cobra.Command{
		Use:   "skipcheck",
		Short: "Print manifest entries matched by the skip masks",
		RunE:  runSkipcheck,
	}
	skipcheckCmd.Flags().BoolVar(&defaultSkips, "default-skips", false, "Fall back to the default skip masks when no skip file exists")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Emit a YAML summary of the manifest",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")

	rootCmd.AddCommand(listCmd, skipcheckCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadManifest builds the manifest from either a dist tarball or the
// manifest/skip files. The skip file is optional: a missing one leaves
// the skip set empty, or installs the default masks when fallback is
// requested.
func loadManifest(withSkip bool) (*manifest.Manifest, error) {
	if distPath != "" {
		return distfile.FromTarball(distPath)
	}

	m, err := manifest.Load(manifestPath, "")
	if err != nil {
		return nil, err
	}
	if !withSkip {
		return m, nil
	}

	if _, err := os.Stat(skipPath); err == nil {
		if err := m.Open(manifest.RoleSkip, skipPath); err != nil {
			return nil, err
		}
	} else if defaultSkips {
		if err := m.ParseLines(manifest.RoleSkip, manifest.DefaultSkips()); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(false)
	if err != nil {
		return err
	}

	if countOnly {
		fmt.Println(m.Count())
		return nil
	}
	for _, entry := range m.Entries() {
		fmt.Println(entry)
	}
	return nil
}

func runSkipcheck(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(true)
	if err != nil {
		return err
	}

	for _, entry := range m.SkippedEntries() {
		fmt.Println(entry)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(true)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return report.NewEmitter(out).Emit(m)
}
