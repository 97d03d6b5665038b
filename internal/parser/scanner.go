package parser

import (
	"fmt"
	"strconv"
)

// ParseError is a grammar failure at a byte offset in the input. Expected
// names the construct the parser was looking for when it gave up.
type ParseError struct {
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Expected, e.Offset)
}

// scanner is a byte cursor over the input with trivial backtracking: a
// mark is just the current offset, and restoring it undoes everything a
// failed alternative consumed. EDTF is pure ASCII, so the cursor works on
// bytes rather than runes; any multibyte character simply fails to match.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the current byte, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.peek()
	if !s.eof() {
		s.pos++
	}
	return ch
}

func (s *scanner) mark() int {
	return s.pos
}

func (s *scanner) restore(m int) {
	s.pos = m
}

// consume advances past ch if it is the current byte.
func (s *scanner) consume(ch byte) bool {
	if s.peek() != ch {
		return false
	}
	s.pos++
	return true
}

// consumeLit advances past lit if the input continues with it.
func (s *scanner) consumeLit(lit string) bool {
	if len(s.src)-s.pos < len(lit) || s.src[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// skipHSpace skips horizontal whitespace. Only list commas tolerate
// padding, so this is called nowhere else.
func (s *scanner) skipHSpace() {
	for s.peek() == ' ' || s.peek() == '\t' {
		s.pos++
	}
}

func (s *scanner) errExpected(what string) *ParseError {
	return &ParseError{Offset: s.pos, Expected: what}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isDigitOrMask(ch byte) bool {
	return isDigit(ch) || ch == 'X'
}

// signedInt consumes an optional sign followed by one or more decimal
// digits and returns the literal text, sign included.
func (s *scanner) signedInt() (string, *ParseError) {
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.pos++
	}
	digits := 0
	for isDigit(s.peek()) {
		s.pos++
		digits++
	}
	if digits == 0 {
		s.pos = start
		return "", s.errExpected("digit")
	}
	return s.src[start:s.pos], nil
}

// signedFixedDigits consumes an optional sign followed by exactly n
// decimal digits and returns the signed value. A run of more or fewer
// contiguous digits is a failure: the fixed width is enforced, not
// zero-padding tolerance.
func (s *scanner) signedFixedDigits(n int) (int, *ParseError) {
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.pos++
	}
	digits := 0
	for isDigit(s.peek()) {
		s.pos++
		digits++
	}
	if digits != n {
		s.pos = start
		return 0, s.errExpected(fmt.Sprintf("%d-digit number", n))
	}
	v, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		s.pos = start
		return 0, s.errExpected(fmt.Sprintf("%d-digit number", n))
	}
	return v, nil
}

// digitOrMaskRun consumes exactly n characters that are each a decimal
// digit or the mask character 'X'. A contiguous run longer or shorter
// than n fails, guaranteeing fixed width.
func (s *scanner) digitOrMaskRun(n int) (string, *ParseError) {
	start := s.pos
	count := 0
	for isDigitOrMask(s.peek()) {
		s.pos++
		count++
	}
	if count != n {
		s.pos = start
		return "", s.errExpected(fmt.Sprintf("%d digit-or-mask characters", n))
	}
	return s.src[start:s.pos], nil
}

// twoDigitBounded consumes exactly two decimal digits whose value lies in
// [lo, hi]. One digit, three contiguous digits, or an out-of-range value
// all fail.
func (s *scanner) twoDigitBounded(lo, hi int, what string) (int, *ParseError) {
	start := s.pos
	count := 0
	for isDigit(s.peek()) {
		s.pos++
		count++
	}
	if count != 2 {
		s.pos = start
		return 0, s.errExpected(what)
	}
	v, _ := strconv.Atoi(s.src[start:s.pos])
	if v < lo || v > hi {
		s.pos = start
		return 0, s.errExpected(what)
	}
	return v, nil
}
