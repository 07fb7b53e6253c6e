package analyzer_test

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opstools/logalyzer/analyzer"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
}

func TestFindLatestLog(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		latest, err := analyzer.FindLatestLog("/nonexistent/logalyzer/logs")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("no matching files", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "logalyzer-logs-")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		writeFile(t, filepath.Join(dir, "error.log"), "")
		writeFile(t, filepath.Join(dir, "nginx-access-ui.log-20170630.bz2"), "")

		latest, err := analyzer.FindLatestLog(dir)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("picks the most recent valid date", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "logalyzer-logs-")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		writeFile(t, filepath.Join(dir, "nginx-access-ui.log-20170629"), "")
		writeFile(t, filepath.Join(dir, "nginx-access-ui.log-20170630.gz"), "")
		// Day out of range, must be skipped.
		writeFile(t, filepath.Join(dir, "nginx-access-ui.log-20170732"), "")
		writeFile(t, filepath.Join(dir, "other.log"), "")

		latest, err := analyzer.FindLatestLog(dir)
		require.NoError(t, err)
		require.NotNil(t, latest)

		assert.Equal(t, filepath.Join(dir, "nginx-access-ui.log-20170630.gz"), latest.Path)
		assert.Equal(t, "2017.06.30", latest.Date.Format("2006.01.02"))
	})
}

func TestOpenLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "logalyzer-logs-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(dir, "nginx-access-ui.log-20170629")
		writeFile(t, path, "plain contents\n")

		reader, err := analyzer.OpenLog(path)
		require.NoError(t, err)
		defer reader.Close()

		contents, err := ioutil.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "plain contents\n", string(contents))
	})

	t.Run("gzip file", func(t *testing.T) {
		path := filepath.Join(dir, "nginx-access-ui.log-20170630.gz")

		file, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(file)
		_, err = gz.Write([]byte("compressed contents\n"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, file.Close())

		reader, err := analyzer.OpenLog(path)
		require.NoError(t, err)
		defer reader.Close()

		contents, err := ioutil.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "compressed contents\n", string(contents))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := analyzer.OpenLog(filepath.Join(dir, "missing"))
		require.Error(t, err)
	})

	t.Run("corrupt gzip file", func(t *testing.T) {
		path := filepath.Join(dir, "nginx-access-ui.log-20170701.gz")
		writeFile(t, path, "not gzip at all")

		_, err := analyzer.OpenLog(path)
		require.Error(t, err)
	})
}
