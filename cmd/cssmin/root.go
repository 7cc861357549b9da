package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssmin",
	Short: "Down-level and fold CSS declarations against a browser target matrix",
	Long: `cssmin folds margin/padding/inset shorthands, lowers logical
properties to physical ones (with :dir() fallbacks where values
diverge), and emits @supports fallbacks for double-position gradient
stops your target browsers don't support natively. Color functions
read from a file carry no computed RGB equivalent, so they get no
fallback.`,
	RunE: func(_ *cobra.Command, args []string) error {
		return minifyCmd.RunE(minifyCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("color", false, "Force color diagnostics output")
	rootCmd.PersistentFlags().String("config", ".cssmin.yaml", "Config file path")

	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
