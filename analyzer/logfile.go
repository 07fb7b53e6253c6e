package analyzer

import (
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var logFileNameRegexp = regexp.MustCompile(`^nginx-access-ui\.log-(\d{8})(\.gz)?$`)

// LogInfo names the access log chosen for analysis and the date encoded
// in its file name.
type LogInfo struct {
	Path string
	Date time.Time
}

// FindLatestLog scans dir for files named nginx-access-ui.log-YYYYMMDD
// (optionally .gz) and returns the one with the most recent valid date,
// or nil when the directory is missing or holds no matching files.
func FindLatestLog(dir string) (*LogInfo, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read log directory %s", dir)
	}

	var latest *LogInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := logFileNameRegexp.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		date, err := time.Parse("20060102", match[1])
		if err != nil {
			continue
		}

		if latest == nil || date.After(latest.Date) {
			latest = &LogInfo{
				Path: filepath.Join(dir, entry.Name()),
				Date: date,
			}
		}
	}

	return latest, nil
}

type gzipLogReader struct {
	*gzip.Reader
	file *os.File
}

func (r *gzipLogReader) Close() error {
	if err := r.Reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// OpenLog opens an access log for reading, transparently decompressing
// files with a .gz suffix.
func OpenLog(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(err, "failed to decompress log file %s", path)
	}

	return &gzipLogReader{Reader: gz, file: file}, nil
}
