package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/viennacmp/dga/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [patterns...]",
	Short: "Validate calculation manifests",
	Long: `Validate calculation manifests against the configuration schema,
including the cross-field rules a single section cannot express.

Patterns support doublestar globs:

  dgaconf validate dga.yaml
  dgaconf validate 'runs/**/*.yaml'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandPatterns(args)
		if err != nil {
			return err
		}

		failures := 0
		for _, file := range files {
			if err := validateManifest(file); err != nil {
				fmt.Printf("%s %s\n", errorStyle.Sprint("✗"), file)
				fmt.Printf("  %v\n", err)
				failures++
				continue
			}
			fmt.Printf("%s %s\n", successStyle.Sprint("✓"), file)
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d manifests failed validation", failures, len(files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateManifest(path string) error {
	cfg, err := config.ParseFile(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// expandPatterns resolves doublestar glob patterns to a file list. A pattern
// without glob metacharacters is passed through so a missing file is still
// reported as an error downstream.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, match := range matches {
			match = filepath.Clean(match)
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	return files, nil
}
