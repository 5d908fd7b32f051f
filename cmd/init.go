package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"tinysh/core/config"
)

// initCmd writes a default shell configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the shell configuration.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		_, err := config.Initialize(cfgPath, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
