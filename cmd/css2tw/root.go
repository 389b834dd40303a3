package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "css2tw [patterns...]",
	Short: "Convert CSS rules into Tailwind CSS utility classes",
	Long: `Convert plain CSS declarations into equivalent Tailwind CSS utility classes.
Each rule becomes one line of classes; declarations that have no Tailwind
equivalent are reported with their location and the reason.`,
	Args: cobra.ArbitraryArgs,
	// Default behavior: run convert when no subcommand is given.
	// loadConfig is called here because PreRunE of convertCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runConvert(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	for _, c := range []*cobra.Command{rootCmd, convertCmd, checkCmd} {
		addConversionFlags(c)
	}

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConversionFlags registers the flags shared by every command that
// converts stylesheets.
func addConversionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("stdin", false, "Read CSS from standard input")
	f.StringP("output-format", "o", "", "Output format: classes|issues|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (css2tw) suffix on issues")

	// Conversion settings
	f.Bool("size", true, "Merge equal w-* and h-* into size-*")
	f.Bool("repeater", true, "Collapse repeated grid tracks into repeat()")
	f.Int("repeater-threshold", 3, "Minimum repetitions for repeat() (at least 2)")
	f.Bool("arbitrary", true, "Allow arbitrary value classes like w-[13px]")
	f.Bool("short", true, "Prefer axis classes like px-4 over per-side classes")
}
