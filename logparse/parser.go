package logparse

import (
	"regexp"
	"strconv"
)

// Matches the nginx access log format used by the ui frontends:
// ip, remote user, real ip, [time_local], "METHOD path HTTP/x", status,
// bytes, then five quoted fields, then the request time in seconds.
var accessLineRegexp = regexp.MustCompile(
	`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\s+\S+\s+\S+\s+\[[^\]]*\]\s+` +
		`"\S+\s+(\S+)(?:\s+HTTP/\S*)?"\s+\S+\s+\S+\s+` +
		`"[^"]*"\s+"[^"]*"\s+"[^"]*"\s+"[^"]*"\s+"[^"]*"\s+` +
		`(\d+\.?\d*)\s*$`)

// ParseLine extracts the request URL and the request time from a single
// access log line. Lines that don't follow the expected format return
// ok == false with no partial results.
func ParseLine(line string) (url string, requestTime float64, ok bool) {
	match := accessLineRegexp.FindStringSubmatch(line)
	if match == nil {
		return "", 0, false
	}

	requestTime, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return "", 0, false
	}

	return match[1], requestTime, true
}
