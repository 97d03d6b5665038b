// Package types defines the EDTF value model shared by the parser and
// the canonical formatter. Values are plain immutable data: they are
// constructed by parsing (or directly, in tests and callers) and carry no
// behavior beyond simple accessors.
package types

// Value is the interface implemented by all EDTF value variants.
//
//sumtype:decl
type Value interface {
	isValue()
}

// Date is a date value annotated with its uncertainty and approximation
// flags. Both flags set means "circa, uncertain", which renders as the
// single combined marker rather than the two individual ones.
type Date struct {
	Value       DateValue
	Uncertain   bool
	Approximate bool
}

// Qualified reports whether either annotation flag is set.
func (d Date) Qualified() bool {
	return d.Uncertain || d.Approximate
}

// Single is one annotated date.
type Single struct {
	Date Date
}

func (Single) isValue() { _ = 0 }

// Interval is a start/end pair of annotated dates. A nil side is an
// absent endpoint: open-ended ("..") or unknown (the bare-slash
// shorthand) — the two parse to the same model and both render as "..".
type Interval struct {
	Start *Date
	End   *Date
}

func (Interval) isValue() { _ = 0 }

// List is an ordered sequence of values. The grammar only ever produces
// single dates as members, but the model deliberately permits any Value
// so the recursive shape is preserved.
type List struct {
	Values []Value
}

func (List) isValue() { _ = 0 }
