package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redmarklab/redmark/internal/ui"
	"github.com/redmarklab/redmark/pkg/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit [image]",
	Short: "Open the markup editor",
	Long: `Open the editor window. With an image argument it loads right away;
without one the system file picker opens instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		ed := editor.New()
		pick := true
		if len(args) == 1 {
			if err := ed.Open(args[0]); err != nil {
				return err
			}
			pick = false
		}
		ui.Run(ed, log, pick)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
