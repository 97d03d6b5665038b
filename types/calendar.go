package types

// Calendar arithmetic for date validation. Dates follow the hybrid
// calendar of the British Empire: proleptic Gregorian leap years, with
// the September 1752 reform gap (the 3rd through the 13th never
// happened) carved out.

var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule. The rule is applied uniformly to negative (BCE) years.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%4 == 0 && year%100 != 0
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if the month is invalid.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if month == February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// ValidDay reports whether day exists in the given month of the given
// year. September 1752 days 3 through 13 do not exist: the calendar
// jumped from the 2nd to the 14th.
func ValidDay(year int, month Month, day int) bool {
	if day < 1 || day > DaysInMonth(year, month) {
		return false
	}
	if year == 1752 && month == September && day >= 3 && day <= 13 {
		return false
	}
	return true
}
