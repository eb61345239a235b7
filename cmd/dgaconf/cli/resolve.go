package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viennacmp/dga/config"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [manifest...]",
	Short: "Print a manifest with all defaults and derived values filled in",
	Long: `Resolve a calculation manifest: apply defaults, fold shorthand keys,
join relative paths with the manifest directory, derive the q-grid from the
k-grid and complete the Kanamori parameter list.

Multiple manifests are layered, later files overriding earlier ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		resolved, err := loadResolved(args)
		if err != nil {
			return err
		}

		if output != "" {
			return resolved.Save(output)
		}
		return resolved.Write(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("output", "o", "", "Write the resolved manifest to a file instead of stdout")
}

// loadResolved layers the given manifests, validates the result and resolves
// derived values against the directory of the last manifest.
func loadResolved(paths []string) (*config.Config, error) {
	cfg, err := config.ParseFiles(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", paths[len(paths)-1], err)
	}
	return cfg.Resolve(filepath.Dir(paths[len(paths)-1]))
}
