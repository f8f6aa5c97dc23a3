package cmd

import (
	"github.com/clipsmith/clipsmith/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// verbosityLevel is the command-line flag for setting the log level
	verbosityLevel string
)

var rootCmd = &cobra.Command{
	Use:   "clipsmith",
	Short: "Generate validated clip segments from a transcript with AI",
	Long: `Clipsmith asks an AI provider to pick the best moments of a recording
and turns the free-form response into validated, time-bounded segments,
falling back to evenly distributed segments when the response is unusable.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set the global log level based on the flag
		logLevel := utils.LogLevelFromString(verbosityLevel)
		utils.SetLogLevel(logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global flags
	rootCmd.PersistentFlags().StringVarP(&verbosityLevel, "log-level", "l", "normal",
		"Set the logging verbosity level: quiet, normal, verbose, debug")
}
