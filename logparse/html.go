package logparse

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

const tableJSONPlaceholder = "$table_json"

// RenderHTML writes the report page to output by substituting the
// $table_json placeholder in the template file with the JSON-encoded
// rows. The rest of the template passes through untouched.
func RenderHTML(templateFile string, rows []ReportRow, output io.Writer) error {
	page, err := ioutil.ReadFile(templateFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read report template %s", templateFile)
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrap(err, "failed to encode report rows")
	}

	rendered := strings.Replace(string(page), tableJSONPlaceholder, string(payload), 1)
	if _, err := io.WriteString(output, rendered); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	return nil
}
