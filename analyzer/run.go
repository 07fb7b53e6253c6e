package analyzer

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/opstools/logalyzer/logparse"
)

// Run performs one analysis pass: pick the most recent access log,
// aggregate it and write the HTML report next to the template. When the
// report for that log's date already exists the run is a no-op unless
// force is set.
func Run(config *Config, force bool) error {
	latest, err := FindLatestLog(config.LogDir)
	if err != nil {
		return err
	}
	if latest == nil {
		logrus.Infof("no log files found in %s", config.LogDir)
		return nil
	}
	logrus.Infof("analyzing %s", latest.Path)

	reportName := fmt.Sprintf("report-%s.html", latest.Date.Format("2006.01.02"))
	reportPath := filepath.Join(config.ReportDir, reportName)

	templateFile := config.TemplateFile
	if templateFile == "" {
		templateFile = filepath.Join(config.ReportDir, "report.html")
	}

	if !force {
		if _, err := os.Stat(reportPath); err == nil {
			logrus.Infof("report %s is up to date", reportPath)
			return nil
		}
	}

	if err := os.MkdirAll(config.ReportDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create report directory %s", config.ReportDir)
	}
	if _, err := os.Stat(templateFile); err != nil {
		return errors.Wrapf(err, "missing report template %s", templateFile)
	}

	input, err := OpenLog(latest.Path)
	if err != nil {
		return err
	}
	defer input.Close()

	rows, err := logparse.Aggregate(input, config.ErrorsLimit, config.ReportSize)
	if err != nil {
		return errors.Wrapf(err, "failed to analyze %s", latest.Path)
	}

	// Render to a temp file first so a failed run never leaves a partial
	// report behind.
	tmp, err := ioutil.TempFile(config.ReportDir, "report-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create report file")
	}
	defer os.Remove(tmp.Name())

	if err := logparse.RenderHTML(templateFile, rows, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write report file")
	}
	if err := os.Rename(tmp.Name(), reportPath); err != nil {
		return errors.Wrap(err, "failed to move report file into place")
	}

	logrus.Infof("wrote report %s (%d urls)", reportPath, len(rows))

	return nil
}
