package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .styledscan.yaml config file",
		Long:  `Create a .styledscan.yaml configuration file in the current directory with sensible defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = ".styledscan.yaml"
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}

const defaultConfig = `# styledscan configuration

# Directory to scan when no argument is given
root: ./src

# Skip paths (doublestar globs relative to root)
exclude:
  - "**/node_modules"
  - "**/*.stories.tsx"
respect-gitignore: false

# Max concurrent file reads, 0 = 4 per CPU, -1 = unbounded
jobs: 0

output-format: text   # text | json | markdown
list-matches: false
color: false
verbose: false
`
