package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "redmark",
	Short: "redmark - screenshot annotation and markup",
	Long: `redmark opens screenshots for quick markup: rectangle callouts, crop,
brightness and contrast, then saves the result back over the original
while keeping a .bak copy of the untouched file.

Examples:
  redmark edit                      # open the editor with a file picker
  redmark edit shot.png             # open an image directly
  redmark serve --port 8000         # receive photos from a phone
  redmark version                   # print the version`,
	Version: version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}
