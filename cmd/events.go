package cmd

import (
	"fmt"
	"os"

	"github.com/josephlewis42/myshell/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report [FILE]",
	Short: "Summarize an event log, by default the configured one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var logPath string
		if len(args) > 0 {
			logPath = args[0]
		} else {
			config, err := loadConfig(afero.NewOsFs())
			if err != nil {
				return err
			}
			logPath = config.EventLogPath()
		}
		if logPath == "" {
			return fmt.Errorf("no event log configured, pass a FILE")
		}

		fd, err := os.Open(logPath)
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
