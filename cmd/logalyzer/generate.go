package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/opstools/logalyzer/analyzer"
)

var generate = &cobra.Command{
	Use:   "generate",
	Short: "Generates a sample access log for trying out the analyzer",
	RunE:  generateCmd,
}

func generateCmd(cmd *cobra.Command, args []string) error {
	var options analyzer.SampleLogOptions
	options.Count, _ = cmd.Flags().GetInt("count")
	options.URLCount, _ = cmd.Flags().GetInt("urls")
	options.BadLineRate, _ = cmd.Flags().GetFloat64("bad-rate")
	options.Seed, _ = cmd.Flags().GetInt64("seed")

	out, _ := cmd.Flags().GetString("out")
	output := os.Stdout
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", out)
		}
		defer file.Close()
		output = file
	}

	return analyzer.WriteSampleLog(output, options)
}

func init() {
	generate.Flags().IntP("count", "n", 10000, "number of lines to generate")
	generate.Flags().Int("urls", 20, "number of distinct urls to draw from")
	generate.Flags().Float64("bad-rate", 0.0, "fraction of lines that won't match the log format")
	generate.Flags().Int64("seed", 0, "random seed")
	generate.Flags().StringP("out", "o", "", "file to write to (defaults to stdout)")

	rootCmd.AddCommand(generate)
}
