package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opstools/logalyzer/analyzer"
)

var analyze = &cobra.Command{
	Use:   "analyze",
	Short: "Finds the most recent access log and writes its HTML report",
	RunE:  analyzeCmd,
}

func analyzeCmd(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	if err := analyzer.ReadConfig(configFile); err != nil {
		return err
	}
	if err := analyzer.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	config, err := analyzer.GetConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(config.LogFile); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")

	return analyzer.Run(config, force)
}

func registerAnalyzeFlags(flags *pflag.FlagSet) {
	flags.Int("size", 10, "maximum number of urls in the report")
	flags.String("report-dir", "./reports", "directory the report is written to")
	flags.String("log-dir", "./logs", "directory searched for access logs")
	flags.String("template", "", "path to the report template (default <report-dir>/report.html)")
	flags.Float64("errors-limit", 0.64, "maximum tolerated fraction of unparseable lines")
	flags.Bool("force", false, "rewrite the report even when it is up to date")
}

func init() {
	registerAnalyzeFlags(analyze.Flags())

	rootCmd.AddCommand(analyze)
}
