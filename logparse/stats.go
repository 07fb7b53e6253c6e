package logparse

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// URLStats accumulates the observed request times for each URL during a
// single pass over a log. URLs holds the keys in first-seen order.
type URLStats struct {
	Times map[string][]float64
	URLs  []string

	totalCount int
	totalTime  float64
}

func NewURLStats() *URLStats {
	return &URLStats{
		Times: make(map[string][]float64),
	}
}

func (s *URLStats) Add(url string, requestTime float64) {
	if _, ok := s.Times[url]; !ok {
		s.URLs = append(s.URLs, url)
	}
	s.Times[url] = append(s.Times[url], requestTime)
	s.totalCount++
	s.totalTime += requestTime
}

func (s *URLStats) TotalCount() int {
	return s.totalCount
}

// ReportRow is one URL's aggregated statistics. Float fields are rounded
// to 3 decimal places. The tags match the payload consumed by the report
// template.
type ReportRow struct {
	URL       string  `json:"url" mapstructure:"url"`
	Count     int     `json:"count" mapstructure:"count"`
	CountPerc float64 `json:"count_perc" mapstructure:"count_perc"`
	TimeSum   float64 `json:"time_sum" mapstructure:"time_sum"`
	TimePerc  float64 `json:"time_perc" mapstructure:"time_perc"`
	TimeAvg   float64 `json:"time_avg" mapstructure:"time_avg"`
	TimeMax   float64 `json:"time_max" mapstructure:"time_max"`
	TimeMed   float64 `json:"time_med" mapstructure:"time_med"`
}

// Rows derives a ReportRow per URL in first-seen order. Percentages are
// shares of all matched requests and of the total request time.
func (s *URLStats) Rows() ([]ReportRow, error) {
	rows := make([]ReportRow, 0, len(s.URLs))
	for _, url := range s.URLs {
		times := s.Times[url]

		timeSum, err := stats.Sum(times)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sum times for %s", url)
		}
		timeMax, err := stats.Max(times)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find max time for %s", url)
		}
		timeMed, err := stats.Median(times)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find median time for %s", url)
		}

		count := len(times)
		countPerc := 0.0
		if s.totalCount > 0 {
			countPerc = 100 * float64(count) / float64(s.totalCount)
		}
		timePerc := 0.0
		if s.totalTime > 0 {
			timePerc = 100 * timeSum / s.totalTime
		}

		rows = append(rows, ReportRow{
			URL:       url,
			Count:     count,
			CountPerc: round3(countPerc),
			TimeSum:   round3(timeSum),
			TimePerc:  round3(timePerc),
			TimeAvg:   round3(timeSum / float64(count)),
			TimeMax:   round3(timeMax),
			TimeMed:   round3(timeMed),
		})
	}

	return rows, nil
}

func round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}
