package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"panetop/internal/config"
	"panetop/internal/errors"
)

var initForce bool

// initCmd writes a starter config file with the defaults spelled out.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a config file with the default settings to edit.

The file goes to ~/.config/panetop/config.yaml, or to the path given
with --config.

Examples:
  panetop init
  panetop init --force
  panetop --config ./panetop.yaml init`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(configFlag, initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

// initCommand writes the default config to path, refusing to overwrite
// unless forced.
func initCommand(path string, force bool) error {
	if path == "" {
		path = config.DefaultPath()
		if path == "" {
			return errors.New(errors.ErrConfig,
				"Cannot determine the home directory",
				"Pass an explicit path with --config.")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", path),
			"Use --force to overwrite.")
	}

	if err := config.Default().Write(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
