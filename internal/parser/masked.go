package parser

import (
	"strconv"
	"strings"

	"github.com/ahankinson/edtf-go/types"
)

// maskedDate parses a date whose digits may be replaced by the mask
// character 'X' and expands it into a closed interval of concrete,
// unqualified bounds. At least one mask must appear somewhere, or the
// production fails and control falls through to the plain grammars.
//
// Each masked year digit independently ranges 0..9: the lower bound
// substitutes 0 and the upper 9, with the sign reattached afterwards (so
// for negative years the substituted window swaps ends). A masked month
// is the full January..December range; a masked day runs from 1 to the
// true last day of the upper-bound year and month.
func (s *scanner) maskedDate() (types.Value, *ParseError) {
	start := s.mark()

	neg := false
	if s.consume('-') {
		neg = true
	} else {
		s.consume('+')
	}

	yearRun, err := s.digitOrMaskRun(4)
	if err != nil {
		return nil, err
	}
	masked := strings.ContainsRune(yearRun, 'X')

	haveMonth := false
	haveDay := false
	monthMasked := false
	dayMasked := false
	var month, day int

	if s.consume('-') {
		haveMonth = true
		fieldStart := s.mark()
		run, err := s.digitOrMaskRun(2)
		if err != nil {
			return nil, err
		}
		switch {
		case run == "XX":
			masked = true
			monthMasked = true
		case !strings.ContainsRune(run, 'X'):
			month, _ = strconv.Atoi(run)
			if month < 1 || month > 12 {
				s.restore(fieldStart)
				return nil, s.errExpected("two-digit month")
			}
		default:
			s.restore(fieldStart)
			return nil, s.errExpected("fully masked or fully specified month")
		}

		if s.consume('-') {
			haveDay = true
			fieldStart := s.mark()
			run, err := s.digitOrMaskRun(2)
			if err != nil {
				return nil, err
			}
			switch {
			case run == "XX":
				masked = true
				dayMasked = true
			case !strings.ContainsRune(run, 'X'):
				day, _ = strconv.Atoi(run)
				if day < 1 || day > 31 {
					s.restore(fieldStart)
					return nil, s.errExpected("two-digit day")
				}
			default:
				s.restore(fieldStart)
				return nil, s.errExpected("fully masked or fully specified day")
			}
		}
	}

	if !masked {
		return nil, &ParseError{Offset: start, Expected: "masked digit"}
	}

	loYear, _ := strconv.Atoi(strings.ReplaceAll(yearRun, "X", "0"))
	hiYear, _ := strconv.Atoi(strings.ReplaceAll(yearRun, "X", "9"))
	if neg {
		loYear, hiYear = -hiYear, -loYear
	}

	loMonth, hiMonth := month, month
	if monthMasked {
		loMonth, hiMonth = int(types.January), int(types.December)
	}
	loDay, hiDay := day, day
	if dayMasked {
		loDay = 1
		hiDay = types.DaysInMonth(hiYear, types.Month(hiMonth))
	}

	var lower, upper types.DateValue
	switch {
	case haveDay:
		lower = types.YearMonthDay{Year: loYear, Month: types.Month(loMonth), Day: loDay}
		upper = types.YearMonthDay{Year: hiYear, Month: types.Month(hiMonth), Day: hiDay}
	case haveMonth:
		lower = types.YearMonth{Year: loYear, Month: types.Month(loMonth)}
		upper = types.YearMonth{Year: hiYear, Month: types.Month(hiMonth)}
	default:
		lower = types.Year{Value: loYear}
		upper = types.Year{Value: hiYear}
	}

	return types.Interval{
		Start: &types.Date{Value: lower},
		End:   &types.Date{Value: upper},
	}, nil
}
