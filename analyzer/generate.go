package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/icrowley/fake"
	"github.com/pkg/errors"
)

// SampleLogOptions controls WriteSampleLog. BadLineRate is the fraction
// of emitted lines that deliberately don't follow the log format.
type SampleLogOptions struct {
	Count       int
	URLCount    int
	BadLineRate float64
	Seed        int64
}

// WriteSampleLog emits a synthetic access log for trying out the
// analyzer end to end. Request times follow an exponential distribution
// so the ranked report has a meaningful spread.
func WriteSampleLog(output io.Writer, options SampleLogOptions) error {
	if options.URLCount <= 0 {
		options.URLCount = 20
	}
	rnd := rand.New(rand.NewSource(options.Seed))

	urls := make([]string, options.URLCount)
	for i := range urls {
		urls[i] = fmt.Sprintf("/api/%s/%s", fake.Word(), fake.Word())
	}

	w := bufio.NewWriter(output)
	timestamp := time.Now().Add(-time.Duration(options.Count) * time.Second)
	for i := 0; i < options.Count; i++ {
		timestamp = timestamp.Add(time.Second)

		if rnd.Float64() < options.BadLineRate {
			if _, err := fmt.Fprintln(w, fake.Sentence()); err != nil {
				return errors.Wrap(err, "failed to write sample log")
			}
			continue
		}

		_, err := fmt.Fprintf(w, "%s -  - [%s] \"GET %s HTTP/1.1\" 200 %d \"-\" \"%s\" \"-\" \"%s\" \"-\" %.3f\n",
			fake.IPv4(),
			timestamp.Format("02/Jan/2006:15:04:05 -0700"),
			urls[rnd.Intn(len(urls))],
			100+rnd.Intn(10000),
			fake.UserAgent(),
			requestID(rnd),
			rnd.ExpFloat64()*0.2,
		)
		if err != nil {
			return errors.Wrap(err, "failed to write sample log")
		}
	}

	return errors.Wrap(w.Flush(), "failed to write sample log")
}

func requestID(rnd *rand.Rand) string {
	return fmt.Sprintf("%016x", rnd.Uint64())
}
