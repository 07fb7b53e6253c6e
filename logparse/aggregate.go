package logparse

import (
	"bufio"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrErrorsLimitExceeded means too large a share of the log failed to
// parse, suggesting the log is not in the expected format or is too
// corrupted to trust. No report is produced in that case.
var ErrErrorsLimitExceeded = errors.New("errors limit exceeded")

const maxLineSize = 1024 * 1024

// Aggregate reads a log line by line, accumulates per-URL request time
// statistics and returns the rows ranked by total time, truncated to
// reportSize. A line that fails to parse counts toward the failure
// ratio; when failed/total exceeds errorsLimit the whole run fails with
// ErrErrorsLimitExceeded as the cause.
func Aggregate(input io.Reader, errorsLimit float64, reportSize int) ([]ReportRow, error) {
	urlStats := NewURLStats()
	total := 0
	failed := 0

	progress := newProgressTracker(progressInterval)
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		total++
		url, requestTime, ok := ParseLine(scanner.Text())
		if !ok {
			failed++
		} else {
			urlStats.Add(url, requestTime)
		}
		progress.observe(total)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read log")
	}

	if total > 0 && failed > 0 {
		ratio := float64(failed) / float64(total)
		logrus.Warnf("failed to parse %d of %d lines (%.3f, limit %.3f)", failed, total, ratio, errorsLimit)
		if ratio > errorsLimit {
			return nil, errors.Wrapf(ErrErrorsLimitExceeded,
				"%d of %d lines failed to parse", failed, total)
		}
	}

	if urlStats.TotalCount() == 0 {
		return []ReportRow{}, nil
	}

	rows, err := urlStats.Rows()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TimeSum > rows[j].TimeSum
	})
	if reportSize > 0 && len(rows) > reportSize {
		rows = rows[:reportSize]
	}

	return rows, nil
}
