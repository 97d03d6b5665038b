package types

import "fmt"

// DateValue is the interface implemented by all date value variants.
//
//sumtype:decl
type DateValue interface {
	isDateValue()
}

// Year is a date known only to year precision. The year is signed and has
// no digit-width limit; negative values are BCE.
type Year struct {
	Value int
}

func (Year) isDateValue() { _ = 0 }

// YearMonth is a date known to year and month precision.
type YearMonth struct {
	Year  int
	Month Month
}

func (YearMonth) isDateValue() { _ = 0 }

// YearMonthDay is a full calendar date.
type YearMonthDay struct {
	Year  int
	Month Month
	Day   int
}

func (YearMonthDay) isDateValue() { _ = 0 }

// Season is a year qualified by one of the four seasons.
type Season struct {
	Year int
	Name SeasonName
}

func (Season) isDateValue() { _ = 0 }

// Month is a month of the year, January = 1.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Valid reports whether m is in January..December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// SeasonName is one of the four seasons. The numeric value is the
// two-digit code used on the wire (21 through 24).
type SeasonName int

const (
	Spring SeasonName = 21 + iota
	Summer
	Autumn
	Winter
)

var seasonNames = [...]string{"Spring", "Summer", "Autumn", "Winter"}

func (n SeasonName) String() string {
	if n < Spring || n > Winter {
		return fmt.Sprintf("SeasonName(%d)", int(n))
	}
	return seasonNames[n-Spring]
}

// Valid reports whether n is one of the four season codes.
func (n SeasonName) Valid() bool {
	return n >= Spring && n <= Winter
}
