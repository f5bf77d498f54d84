package output

import (
	"fmt"

	"github.com/rpgo/pricefmt/pkg/priceformat"
)

// RenderBatch binds each input to f with the given currency override and
// renders it. It stops at the first input that fails.
func RenderBatch(f *priceformat.Formatter, profile string, inputs []string, currency string) (*Batch, error) {
	batch := &Batch{Profile: profile, Config: f.Baseline(), Entries: make([]Entry, 0, len(inputs))}
	for _, in := range inputs {
		out, err := f.Format(in, currency).Render()
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", in, err)
		}
		batch.Entries = append(batch.Entries, Entry{
			Input:    in,
			Value:    f.Value().String(),
			Currency: f.Currency(),
			Output:   out,
		})
	}
	return batch, nil
}
