package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viennacmp/dga/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented starter manifest",
	Long: `Write a starter manifest with every option at its default value and a
short comment explaining it. The path defaults to dga.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}

		path := "dga.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.WriteFile(path, []byte(config.DefaultManifest), 0644); err != nil {
			return err
		}
		fmt.Printf("%s wrote %s\n", successStyle.Sprint("✓"), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}
