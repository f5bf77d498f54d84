/*
Package priceformat renders numeric prices as display strings.

A Formatter is built once from a Config (or an option mapping) and then
used in a fluent chain:

	f, err := priceformat.New(priceformat.DefaultConfig())
	if err != nil {
		return err
	}
	s, err := f.Format(40000.1234, "USD").Decimals(5).ThousandsSeparator(",").Unbreakable(false).Render()
	// s == "40,000.12340 $"

Mutators change the live configuration of the Formatter. Every Render
restores the configuration captured at construction, so a chain only
affects the output it ends in. The bound value and currency are kept
until the next call to Format.

# Trailing zeros

With AutoTrailingZeros or TrimTrailingZeros set, an all-zero fraction is
dropped together with the decimal separator. TrimTrailingZeros also strips
trailing zero digits from a non-zero fraction. Calling the
TrimTrailingZeros mutator turns AutoTrailingZeros off.

# Rounding

Values are rounded half away from zero. Floats are rounded from their
shortest decimal representation, so 1.005 rounds to 1.01.

# Errors

Construction returns ErrConfiguration for unknown option keys or invalid
values. An invalid mutator argument (ErrInvalidArgument) or a non-numeric
value (ErrNotNumeric) is recorded when the call is made; the rest of the
chain is skipped and Render returns the error without output. Format
starts a new chain, so an error from a chain that was never rendered
does not carry over.

A Formatter is not safe for concurrent use. Use Clone to hand out
independent copies.
*/
package priceformat
