package analyzer_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opstools/logalyzer/analyzer"
	"github.com/opstools/logalyzer/logparse"
)

func TestWriteSampleLog(t *testing.T) {
	t.Run("well-formed lines parse", func(t *testing.T) {
		var output bytes.Buffer
		err := analyzer.WriteSampleLog(&output, analyzer.SampleLogOptions{
			Count:    200,
			URLCount: 5,
			Seed:     42,
		})
		require.NoError(t, err)

		lines := 0
		scanner := bufio.NewScanner(&output)
		for scanner.Scan() {
			lines++
			url, requestTime, ok := logparse.ParseLine(scanner.Text())
			require.True(t, ok, "line must parse: %s", scanner.Text())
			assert.True(t, strings.HasPrefix(url, "/api/"))
			assert.True(t, requestTime >= 0)
		}
		require.NoError(t, scanner.Err())
		assert.Equal(t, 200, lines)
	})

	t.Run("bad lines don't parse", func(t *testing.T) {
		var output bytes.Buffer
		err := analyzer.WriteSampleLog(&output, analyzer.SampleLogOptions{
			Count:       50,
			BadLineRate: 1.0,
			Seed:        42,
		})
		require.NoError(t, err)

		lines := 0
		scanner := bufio.NewScanner(&output)
		for scanner.Scan() {
			lines++
			_, _, ok := logparse.ParseLine(scanner.Text())
			assert.False(t, ok)
		}
		require.NoError(t, scanner.Err())
		assert.Equal(t, 50, lines)
	})

	t.Run("generated log aggregates", func(t *testing.T) {
		var output bytes.Buffer
		err := analyzer.WriteSampleLog(&output, analyzer.SampleLogOptions{
			Count:       500,
			URLCount:    10,
			BadLineRate: 0.1,
			Seed:        7,
		})
		require.NoError(t, err)

		rows, err := logparse.Aggregate(&output, 0.64, 10)
		require.NoError(t, err)
		assert.True(t, len(rows) > 0)
		assert.True(t, len(rows) <= 10)
	})
}
