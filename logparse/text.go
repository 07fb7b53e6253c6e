package logparse

import (
	"fmt"
	"io"
	"text/template"

	"github.com/pkg/errors"
)

const textRow = `Hits: {{.Count}} ({{printf "%.3f" .CountPerc}}%)
Total Time: {{printf "%.3f" .TimeSum}}s ({{printf "%.3f" .TimePerc}}%)
Average Time: {{printf "%.3f" .TimeAvg}}s
Median Time: {{printf "%.3f" .TimeMed}}s
Max Time: {{printf "%.3f" .TimeMax}}s

`

var textRowTemplate = template.Must(template.New("textRow").Parse(textRow))

func dumpRowsText(rows []ReportRow, output io.Writer) error {
	fmt.Fprintln(output, "--------- Request Time Report ------------")

	for _, row := range rows {
		fmt.Fprintln(output, "URL: "+row.URL)
		if err := textRowTemplate.Execute(output, row); err != nil {
			return errors.Wrap(err, "error executing row template")
		}
	}

	fmt.Fprintf(output, "URLs: %d\n", len(rows))

	return nil
}
