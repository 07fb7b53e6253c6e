package analyzer_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opstools/logalyzer/analyzer"
	"github.com/opstools/logalyzer/logparse"
)

const runTestLog = `1.2.3.4 - - [date] "GET /a HTTP/1.1" 200 10 "-" "-" "-" "-" "-" 0.5
1.2.3.4 - - [date] "GET /b HTTP/1.1" 200 10 "-" "-" "-" "-" "-" 1.5
`

func setupRunDirs(t *testing.T, logContents string) (*analyzer.Config, string) {
	t.Helper()

	root, err := ioutil.TempDir("", "logalyzer-run-")
	require.NoError(t, err)

	logDir := filepath.Join(root, "logs")
	reportDir := filepath.Join(root, "reports")
	require.NoError(t, os.MkdirAll(logDir, 0755))
	require.NoError(t, os.MkdirAll(reportDir, 0755))

	writeFile(t, filepath.Join(logDir, "nginx-access-ui.log-20170630"), logContents)
	writeFile(t, filepath.Join(reportDir, "report.html"), "<html>$table_json</html>")

	config := &analyzer.Config{
		ReportSize:  10,
		ReportDir:   reportDir,
		LogDir:      logDir,
		ErrorsLimit: 0.64,
	}

	return config, root
}

func TestRun(t *testing.T) {
	config, root := setupRunDirs(t, runTestLog)
	defer os.RemoveAll(root)

	require.NoError(t, analyzer.Run(config, false))

	reportPath := filepath.Join(config.ReportDir, "report-2017.06.30.html")
	report, err := ioutil.ReadFile(reportPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(report), "<html>["))
	assert.Contains(t, string(report), `"url":"/b"`)
	assert.Contains(t, string(report), `"url":"/a"`)
	// /b has the larger time_sum and comes first.
	assert.True(t, strings.Index(string(report), `"url":"/b"`) < strings.Index(string(report), `"url":"/a"`))

	t.Run("second run is a no-op", func(t *testing.T) {
		writeFile(t, reportPath, "already rendered")

		require.NoError(t, analyzer.Run(config, false))

		report, err := ioutil.ReadFile(reportPath)
		require.NoError(t, err)
		assert.Equal(t, "already rendered", string(report))
	})

	t.Run("force rewrites the report", func(t *testing.T) {
		require.NoError(t, analyzer.Run(config, true))

		report, err := ioutil.ReadFile(reportPath)
		require.NoError(t, err)
		assert.Contains(t, string(report), `"url":"/a"`)
	})
}

func TestRunNoLogs(t *testing.T) {
	config, root := setupRunDirs(t, runTestLog)
	defer os.RemoveAll(root)
	config.LogDir = filepath.Join(root, "empty")

	require.NoError(t, analyzer.Run(config, false))

	_, err := os.Stat(filepath.Join(config.ReportDir, "report-2017.06.30.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingTemplate(t *testing.T) {
	config, root := setupRunDirs(t, runTestLog)
	defer os.RemoveAll(root)
	require.NoError(t, os.Remove(filepath.Join(config.ReportDir, "report.html")))

	require.Error(t, analyzer.Run(config, false))
}

func TestRunErrorsLimitExceeded(t *testing.T) {
	config, root := setupRunDirs(t, "garbage 1\ngarbage 2\ngarbage 3\n")
	defer os.RemoveAll(root)

	err := analyzer.Run(config, false)
	require.Error(t, err)
	assert.Equal(t, logparse.ErrErrorsLimitExceeded, errors.Cause(err))

	// No report, partial or otherwise.
	entries, readErr := ioutil.ReadDir(config.ReportDir)
	require.NoError(t, readErr)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"report.html"}, names)
}
