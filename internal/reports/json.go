// Package reports provides habit statistics reports for the habits app.
package reports

import (
	"encoding/json"
)

// FormatJSON formats a report as indented JSON.
func FormatJSON(report *Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
