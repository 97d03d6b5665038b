package edtf

import (
	"github.com/ahankinson/edtf-go/internal/parser"
	"github.com/ahankinson/edtf-go/types"
)

// ParseError is the error returned by Parse. Offset is the byte offset
// of the deepest position the parser reached before giving up, and
// Expected names the construct it was looking for there.
type ParseError = parser.ParseError

// Parse interprets input as an EDTF string and returns its value. The
// whole input must match: trailing content after a valid prefix is an
// error, and unsupported Level 2 constructs fail rather than partially
// parse.
func Parse(input string) (types.Value, error) {
	return parser.Parse(input)
}

// MustParse is like Parse but panics on error. It is intended for
// fixtures and tests with known-good inputs.
func MustParse(input string) types.Value {
	v, err := parser.Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders a value in canonical EDTF form. It is total: every
// value has a rendering, and the output is independent of how the value
// was constructed. Canonicalization is lossy for a few input spellings —
// an unknown interval side parsed from the bare-slash shorthand renders
// as "..", and a "?~" marker pair renders as '%'.
func Format(v types.Value) string {
	return parser.Marshal(v)
}
