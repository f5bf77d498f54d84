package output

import (
	"bytes"
	"encoding/json"
)

// JSONFormatter serializes the batch as pretty-printed JSON. HTML escaping
// is disabled so NBSP markers stay readable.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
