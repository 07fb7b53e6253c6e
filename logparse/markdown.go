package logparse

import (
	"fmt"
	"io"
	"text/template"

	"github.com/pkg/errors"
)

var (
	funcMap = template.FuncMap{
		"compareInt": func(a, b int) string {
			delta := a - b
			if delta == 0 {
				return "0"
			} else {
				return fmt.Sprintf("%+d", delta)
			}
		},
		"compareFloat64": func(a, b float64) string {
			delta := a - b
			if delta == 0 {
				return "0"
			} else {
				return fmt.Sprintf("%+0.3f", delta)
			}
		},
		"comparePercentageInt": func(a, b int) string {
			delta := a - b
			if delta == 0 {
				return "0%"
			} else if b > 0 {
				return fmt.Sprintf("%+0.2f%%", float64(delta)/float64(b)*100)
			} else {
				return "-"
			}
		},
		"comparePercentageFloat64": func(a, b float64) string {
			delta := a - b
			if delta == 0 {
				return "0%"
			} else if b > 0 {
				return fmt.Sprintf("%+0.2f%%", delta/b*100)
			} else {
				return "-"
			}
		},
	}

	reportSummaryMarkdown = template.Must(template.New("reportSummaryMarkdown").Parse(
		`## Request Time Report
### URLs: {{len .}}
URLs are ranked by total request time.

`,
	))

	singleRowTemplate = template.Must(template.New("singleRowTemplate").Funcs(funcMap).Parse(
		`#### {{.URL}}
| Metric | Actual |
| --- | --- |
| Hits | {{.Count}} |
| Hits Share | {{printf "%.3f%%" .CountPerc}} |
| Total Time | {{printf "%.3f" .TimeSum}}s |
| Time Share | {{printf "%.3f%%" .TimePerc}} |
| Average Time | {{printf "%.3f" .TimeAvg}}s |
| Median Time | {{printf "%.3f" .TimeMed}}s |
| Max Time | {{printf "%.3f" .TimeMax}}s |
`,
	))

	comparisonRowTemplate = template.Must(template.New("comparisonRowTemplate").Funcs(funcMap).Parse(
		`#### {{.Actual.URL}}
| Metric | Baseline | Actual | Delta | Delta % |
| --- | --- | --- | --- | --- |
| Hits | {{.Baseline.Count}} | {{.Actual.Count}} | {{compareInt .Actual.Count .Baseline.Count}} | {{comparePercentageInt .Actual.Count .Baseline.Count}} |
| Hits Share | {{printf "%.3f%%" .Baseline.CountPerc}} | {{printf "%.3f%%" .Actual.CountPerc}} | {{compareFloat64 .Actual.CountPerc .Baseline.CountPerc}} | {{comparePercentageFloat64 .Actual.CountPerc .Baseline.CountPerc}} |
| Total Time | {{printf "%.3f" .Baseline.TimeSum}}s | {{printf "%.3f" .Actual.TimeSum}}s | {{compareFloat64 .Actual.TimeSum .Baseline.TimeSum}}s | {{comparePercentageFloat64 .Actual.TimeSum .Baseline.TimeSum}} |
| Time Share | {{printf "%.3f%%" .Baseline.TimePerc}} | {{printf "%.3f%%" .Actual.TimePerc}} | {{compareFloat64 .Actual.TimePerc .Baseline.TimePerc}} | {{comparePercentageFloat64 .Actual.TimePerc .Baseline.TimePerc}} |
| Average Time | {{printf "%.3f" .Baseline.TimeAvg}}s | {{printf "%.3f" .Actual.TimeAvg}}s | {{compareFloat64 .Actual.TimeAvg .Baseline.TimeAvg}}s | {{comparePercentageFloat64 .Actual.TimeAvg .Baseline.TimeAvg}} |
| Median Time | {{printf "%.3f" .Baseline.TimeMed}}s | {{printf "%.3f" .Actual.TimeMed}}s | {{compareFloat64 .Actual.TimeMed .Baseline.TimeMed}}s | {{comparePercentageFloat64 .Actual.TimeMed .Baseline.TimeMed}} |
| Max Time | {{printf "%.3f" .Baseline.TimeMax}}s | {{printf "%.3f" .Actual.TimeMax}}s | {{compareFloat64 .Actual.TimeMax .Baseline.TimeMax}}s | {{comparePercentageFloat64 .Actual.TimeMax .Baseline.TimeMax}} |
`,
	))

	comparisonRowWithoutBaselineTemplate = template.Must(template.New("comparisonRowWithoutBaselineTemplate").Funcs(funcMap).Parse(
		`#### {{.URL}}
| Metric | Baseline | Actual | Delta | Delta % |
| --- | --- | --- | --- | --- |
| Hits | - | {{.Count}} | - | - |
| Hits Share | - | {{printf "%.3f%%" .CountPerc}} | - | - |
| Total Time | - | {{printf "%.3f" .TimeSum}}s | - | - |
| Time Share | - | {{printf "%.3f%%" .TimePerc}} | - | - |
| Average Time | - | {{printf "%.3f" .TimeAvg}}s | - | - |
| Median Time | - | {{printf "%.3f" .TimeMed}}s | - | - |
| Max Time | - | {{printf "%.3f" .TimeMax}}s | - | - |
`,
	))
)

func dumpSingleRowsMarkdown(rows []ReportRow, output io.Writer) error {
	if err := reportSummaryMarkdown.Execute(output, rows); err != nil {
		return errors.Wrap(err, "error executing summary template")
	}

	for _, row := range rows {
		if err := singleRowTemplate.Execute(output, row); err != nil {
			return errors.Wrap(err, "error executing row template")
		}
	}

	return nil
}

func dumpComparisonRowsMarkdown(rows []ReportRow, baselineRows []ReportRow, output io.Writer) error {
	if err := reportSummaryMarkdown.Execute(output, rows); err != nil {
		return errors.Wrap(err, "error executing summary template")
	}

	baselineByURL := make(map[string]ReportRow, len(baselineRows))
	for _, row := range baselineRows {
		baselineByURL[row.URL] = row
	}

	for _, row := range rows {
		baselineRow, ok := baselineByURL[row.URL]
		if !ok {
			if err := comparisonRowWithoutBaselineTemplate.Execute(output, row); err != nil {
				return errors.Wrap(err, "error executing row template")
			}
		} else {
			comparison := struct {
				Actual   ReportRow
				Baseline ReportRow
			}{
				row,
				baselineRow,
			}
			if err := comparisonRowTemplate.Execute(output, comparison); err != nil {
				return errors.Wrap(err, "error executing row template")
			}
		}
	}

	return nil
}

func dumpRowsMarkdown(rows []ReportRow, baselineRows []ReportRow, output io.Writer) error {
	if len(baselineRows) == 0 {
		return dumpSingleRowsMarkdown(rows, output)
	} else {
		return dumpComparisonRowsMarkdown(rows, baselineRows, output)
	}
}
