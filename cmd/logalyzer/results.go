package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opstools/logalyzer/analyzer"
	"github.com/opstools/logalyzer/logparse"
)

var results = &cobra.Command{
	Use:   "results",
	Short: "Parses an access log and prints request time results",
	RunE:  resultsCmd,
}

func resultsCmd(cmd *cobra.Command, args []string) error {
	var config logparse.ResultsConfig
	config.File, _ = cmd.Flags().GetString("file")
	config.BaselineFile, _ = cmd.Flags().GetString("baseline")
	config.Display, _ = cmd.Flags().GetString("display")
	config.TemplateFile, _ = cmd.Flags().GetString("template")
	config.ReportSize, _ = cmd.Flags().GetInt("size")
	config.ErrorsLimit, _ = cmd.Flags().GetFloat64("errors-limit")

	switch config.Display {
	case "text":
	case "markdown":
	case "html":
		if config.TemplateFile == "" {
			return fmt.Errorf("--template is required with --display html")
		}
	default:
		return fmt.Errorf("unexpected --display flag: %s", config.Display)
	}

	var input io.Reader
	if config.File == "" {
		input = os.Stdin
	} else {
		file, err := analyzer.OpenLog(config.File)
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}

	return logparse.ParseResults(&config, input, os.Stdout)
}

func init() {
	results.Flags().StringP("file", "f", "", "an access log file to analyze (defaults to stdin, .gz supported)")
	results.Flags().StringP("display", "d", "text", "one of 'text', 'markdown' or 'html'")
	results.Flags().StringP("baseline", "b", "", "a report row JSON file to which to compare results")
	results.Flags().String("template", "", "report template used with --display html")
	results.Flags().Int("size", 10, "maximum number of urls in the results")
	results.Flags().Float64("errors-limit", 0.64, "maximum tolerated fraction of unparseable lines")

	rootCmd.AddCommand(results)
}
