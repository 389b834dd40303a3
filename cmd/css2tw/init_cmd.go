package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .css2tw.yaml config file",
	Long:  `Create a .css2tw.yaml configuration file (or the --config path) with the default settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigFile
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

const defaultConfig = `# css2tw configuration
# Precedence: flags > CSS2TW_* environment variables > this file.

# Shared settings
verbose: false
quiet: false
color: false

# Conversion settings
settings:
  size: true         # merge equal w-* h-* into size-*
  repeater: true     # collapse repeated grid tracks into repeat()
  threshold: 3       # minimum repetitions for repeat(), at least 2
  arbitrary: true    # allow arbitrary value classes like w-[13px]
  short: true        # prefer px-4 over pl-4 pr-4

# css2tw convert
convert:
  inputs:
    - "**/*.css"
  stdin: false
  output-format: classes # classes | issues | full | json | markdown
  max-issues: 0          # 0 = unlimited
  max-same-issues: 0     # 0 = unlimited
  print-lines: true
  print-linter-name: true

# css2tw check
check:
  strict: false
  threshold: 0.0     # minimum conversion rate in percent
  output-format: issues
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
