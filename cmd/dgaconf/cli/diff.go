package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [old_manifest] [new_manifest]",
	Short: "Show a unified diff of two resolved manifests",
	Long: `Diff two calculation manifests after resolving them, so differences in
defaults, shorthand keys and derived values show up even when the raw files
look unrelated.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contextLines, err := cmd.Flags().GetInt("context")
		if err != nil {
			return err
		}

		oldDoc, err := resolvedYAML(args[0])
		if err != nil {
			return err
		}
		newDoc, err := resolvedYAML(args[1])
		if err != nil {
			return err
		}

		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(oldDoc),
			B:        difflib.SplitLines(newDoc),
			FromFile: args[0],
			ToFile:   args[1],
			Context:  contextLines,
		}
		result, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			return fmt.Errorf("failed to generate diff: %w", err)
		}
		if result == "" {
			fmt.Println(successStyle.Sprint("✓ Manifests resolve to identical configurations"))
			return nil
		}
		fmt.Print(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().IntP("context", "c", 3, "Number of context lines to show around changes")
}

func resolvedYAML(path string) (string, error) {
	resolved, err := loadResolved([]string{path})
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(resolved)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
