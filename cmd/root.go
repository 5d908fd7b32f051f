package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"tinysh/core"
	"tinysh/core/config"
	"tinysh/core/logger"
)

var cfgPath string

// loadConfig reads config.yaml from the configured directory, falling
// back to the embedded defaults when none exists.
func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// rootCmd represents the base command when called without any subcommands.
// Running it starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "tinysh",
	Short: "A small interactive command shell",
	Long:  `An interactive shell with PATH lookup, I/O redirection and job control.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		audit := logger.NewNopLogger()
		if fd, err := configuration.OpenAuditLog(); err != nil {
			log.Printf("Audit logging disabled: %v", err)
		} else if fd != nil {
			defer fd.Close()
			audit = logger.NewJSONLinesLogger(fd)
		}

		shell, err := core.NewShell(configuration, audit)
		if err != nil {
			return err
		}
		defer shell.Close()

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
