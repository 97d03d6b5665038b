// Package parser implements the EDTF grammar and its canonical
// serializer. Parsing is recursive descent over a byte cursor with
// backtracking between alternatives: a failed alternative restores the
// cursor, so the next alternative sees the original input.
package parser

import (
	"strconv"

	"github.com/ahankinson/edtf-go/types"
)

// Parse interprets input as an EDTF string. The whole input must be
// consumed: trailing content after a structurally valid prefix fails the
// parse. Alternatives are tried most specific first — a masked date
// (which expands to an interval), then an explicit interval, then a list
// or single date — and the error reported on failure is the one from the
// deepest position any alternative reached.
func Parse(input string) (types.Value, error) {
	s := &scanner{src: input}

	var best *ParseError
	note := func(e *ParseError) {
		if e != nil && (best == nil || e.Offset >= best.Offset) {
			best = e
		}
	}

	start := s.mark()

	// Masked date first: its lexical prefix overlaps a plain date.
	if v, err := s.maskedDate(); err == nil {
		if s.eof() {
			return v, nil
		}
		note(s.errExpected("end of input"))
	} else {
		note(err)
	}
	s.restore(start)

	if v, err := s.interval(); err == nil {
		if s.eof() {
			return v, nil
		}
		note(s.errExpected("end of input"))
	} else {
		note(err)
	}
	s.restore(start)

	v, err := s.listOrSingle()
	if err == nil {
		if s.eof() {
			return v, nil
		}
		note(s.errExpected("end of input"))
	} else {
		note(err)
	}
	return nil, best
}

// interval parses <left>/<right>. Either side may be an annotated date,
// the open token ".." (or the word "open"), or absent: an empty left
// before the slash and an empty right after it (including a dangling
// slash at end of input) mean "unknown".
func (s *scanner) interval() (types.Value, *ParseError) {
	var startDate *types.Date
	switch {
	case s.consumeLit(".."), s.consumeLit("open"):
	case s.peek() == '/':
		// unknown start
	default:
		d, err := s.annotatedDate()
		if err != nil {
			return nil, err
		}
		startDate = &d
	}

	if !s.consume('/') {
		return nil, s.errExpected("'/'")
	}

	var endDate *types.Date
	switch {
	case s.eof():
		// unknown end
	case s.consumeLit(".."), s.consumeLit("open"):
	default:
		d, err := s.annotatedDate()
		if err != nil {
			return nil, err
		}
		endDate = &d
	}

	return types.Interval{Start: startDate, End: endDate}, nil
}

// listOrSingle parses one annotated date, then keeps collecting further
// dates as long as a comma follows. Commas may be padded with horizontal
// whitespace; nothing else may be.
func (s *scanner) listOrSingle() (types.Value, *ParseError) {
	first, err := s.annotatedDate()
	if err != nil {
		return nil, err
	}

	var rest []types.Value
	for {
		m := s.mark()
		s.skipHSpace()
		if !s.consume(',') {
			s.restore(m)
			break
		}
		s.skipHSpace()
		d, err := s.annotatedDate()
		if err != nil {
			return nil, err
		}
		rest = append(rest, types.Single{Date: d})
	}

	if rest == nil {
		return types.Single{Date: first}, nil
	}
	return types.List{Values: append([]types.Value{types.Single{Date: first}}, rest...)}, nil
}

func (s *scanner) annotatedDate() (types.Date, *ParseError) {
	dv, err := s.dateValue()
	if err != nil {
		return types.Date{}, err
	}
	uncertain, approximate := s.qualifiers()
	return types.Date{Value: dv, Uncertain: uncertain, Approximate: approximate}, nil
}

// qualifiers folds trailing marker characters into the flag pair: '?' is
// uncertain, '~' is approximate, '%' is both. Repetition is idempotent.
func (s *scanner) qualifiers() (uncertain, approximate bool) {
	for {
		switch {
		case s.consume('?'):
			uncertain = true
		case s.consume('~'):
			approximate = true
		case s.consume('%'):
			uncertain = true
			approximate = true
		default:
			return uncertain, approximate
		}
	}
}

// dateValue parses one date atom: an expanded year, a season, or a plain
// calendar date, attempted in that order with backtracking.
func (s *scanner) dateValue() (types.DateValue, *ParseError) {
	if s.peek() == 'Y' {
		// Committed: nothing else starts with Y.
		return s.expandedYear()
	}

	m := s.mark()
	if v, err := s.season(); err == nil {
		return v, nil
	}
	s.restore(m)
	return s.plainDate()
}

// expandedYear parses the Y-prefixed form: a signed year of any length.
// No month, day, or season suffix may follow; exponential years are
// unsupported and fail naturally because 'E' terminates the digit run.
func (s *scanner) expandedYear() (types.DateValue, *ParseError) {
	s.advance() // Y
	lit, err := s.signedInt()
	if err != nil {
		return nil, err
	}
	year, convErr := strconv.Atoi(lit)
	if convErr != nil {
		return nil, s.errExpected("year")
	}
	if s.peek() == '-' {
		return nil, s.errExpected("end of expanded year")
	}
	return types.Year{Value: year}, nil
}

// season parses a 4-digit year followed by one of the season codes 21
// through 24. Expanded years cannot carry a season.
func (s *scanner) season() (types.DateValue, *ParseError) {
	year, err := s.signedFixedDigits(4)
	if err != nil {
		return nil, err
	}
	if !s.consume('-') {
		return nil, s.errExpected("'-'")
	}
	code, err := s.twoDigitBounded(int(types.Spring), int(types.Winter), "season code")
	if err != nil {
		return nil, err
	}
	return types.Season{Year: year, Name: types.SeasonName(code)}, nil
}

// plainDate parses a 4-digit year, optionally a 2-digit month, and
// optionally a 2-digit day validated against the calendar. One-digit
// month or day fields are hard failures.
func (s *scanner) plainDate() (types.DateValue, *ParseError) {
	year, err := s.signedFixedDigits(4)
	if err != nil {
		return nil, err
	}
	if !s.consume('-') {
		return types.Year{Value: year}, nil
	}

	month, err := s.twoDigitBounded(1, 12, "two-digit month")
	if err != nil {
		return nil, err
	}
	if !s.consume('-') {
		return types.YearMonth{Year: year, Month: types.Month(month)}, nil
	}

	day, err := s.twoDigitBounded(1, 31, "two-digit day")
	if err != nil {
		return nil, err
	}
	if !types.ValidDay(year, types.Month(month), day) {
		return nil, s.errExpected("valid day of month")
	}
	return types.YearMonthDay{Year: year, Month: types.Month(month), Day: day}, nil
}
