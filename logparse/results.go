package logparse

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

type ResultsConfig struct {
	File         string
	BaselineFile string
	Display      string
	TemplateFile string
	ReportSize   int
	ErrorsLimit  float64
}

// parseBaselineRows reads the row payload of a previously generated
// report: a JSON array of row objects. Entries that don't decode into a
// row are skipped.
func parseBaselineRows(input io.Reader) ([]ReportRow, error) {
	var raw []interface{}
	if err := json.NewDecoder(input).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode baseline report")
	}

	rows := make([]ReportRow, 0, len(raw))
	for _, entry := range raw {
		row := ReportRow{}
		if err := mapstructure.Decode(entry, &row); err != nil {
			continue
		}
		if row.URL == "" {
			continue
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("failed to find baseline rows")
	}

	return rows, nil
}

// ParseResults aggregates the log read from input and renders the
// ranked rows to output in the configured display format.
func ParseResults(config *ResultsConfig, input io.Reader, output io.Writer) error {
	rows, err := Aggregate(input, config.ErrorsLimit, config.ReportSize)
	if err != nil {
		return err
	}

	var baselineRows []ReportRow
	if config.BaselineFile != "" {
		baselineFile, err := os.Open(config.BaselineFile)
		if err != nil {
			return errors.Wrap(err, "failed to open baseline report file")
		}
		defer baselineFile.Close()

		baselineRows, err = parseBaselineRows(baselineFile)
		if err != nil {
			return err
		}
	}

	switch config.Display {
	case "markdown":
		if err := dumpRowsMarkdown(rows, baselineRows, output); err != nil {
			return errors.Wrap(err, "failed to dump rows")
		}
	case "html":
		if err := RenderHTML(config.TemplateFile, rows, output); err != nil {
			return errors.Wrap(err, "failed to render report")
		}
	case "text":
		if len(baselineRows) > 0 {
			return errors.New("cannot compare to baseline using text display")
		}
		fallthrough
	default:
		if err := dumpRowsText(rows, output); err != nil {
			return errors.Wrap(err, "failed to dump rows")
		}
	}

	return nil
}
