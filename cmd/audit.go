package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
	"tinysh/core/logger"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Explore the shell's command audit log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a summary of audited commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := configuration.ReadAuditLog()
		if err != nil {
			return err
		}
		if fd == nil {
			return fmt.Errorf("audit logging is not enabled; set audit_log in %s", cfgPath)
		}
		defer fd.Close()

		var report logger.Report
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(reportCommand)
}
