package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter prints one rendered price per line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range batch.Entries {
		fmt.Fprintln(&buf, e.Output)
	}
	return buf.Bytes(), nil
}

// TableFormatter prints input, currency and output in aligned columns.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tCURRENCY\tOUTPUT")
	for _, e := range batch.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Input, e.Currency, e.Output)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
