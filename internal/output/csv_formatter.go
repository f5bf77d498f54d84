package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per rendered price.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(batch *Batch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Input", "Value", "Currency", "Output"}); err != nil {
		return nil, err
	}
	for _, e := range batch.Entries {
		if err := w.Write([]string{e.Input, e.Value, e.Currency, e.Output}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
