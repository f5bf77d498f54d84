package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/pricefmt/pkg/priceformat"
)

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Entry is one rendered price.
type Entry struct {
	Input    string `json:"input"`
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Output   string `json:"output"`
}

// Batch holds every price rendered with a single formatter configuration.
type Batch struct {
	Profile string             `json:"profile,omitempty"`
	Config  priceformat.Config `json:"config"`
	Entries []Entry            `json:"entries"`
}

// GenerateReport writes batch to w in the named format.
func GenerateReport(w io.Writer, batch *Batch, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(batch)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
