package output

import (
	"encoding/json"
	"strings"

	"github.com/chatfilter/chatfilter/internal/record"
)

// RecordList implements Formatter for a set of records that survived a
// filter. Text output is one compact JSON document per line, JSON
// output is an indented array.
type RecordList struct {
	Records []record.Record
}

// FormatText returns the matching records, one per line.
func (l *RecordList) FormatText() string {
	lines := make([]string, len(l.Records))
	for i, r := range l.Records {
		lines[i] = r.Raw()
	}
	return strings.Join(lines, "\n")
}

// FormatJSON returns the matching records as a JSON array.
func (l *RecordList) FormatJSON() ([]byte, error) {
	if len(l.Records) == 0 {
		return []byte("[]"), nil
	}
	raws := make([]json.RawMessage, len(l.Records))
	for i, r := range l.Records {
		raws[i] = json.RawMessage(r.Raw())
	}
	return json.MarshalIndent(raws, "", "  ")
}
