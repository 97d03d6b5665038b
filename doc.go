// Package edtf parses and formats Extended Date/Time Format (EDTF)
// strings: historical and bibliographic dates of varying precision, with
// uncertainty and approximation qualifiers, seasons, intervals, lists,
// and masked ("unspecified digit") dates.
//
// # Overview
//
// The package exposes two pure functions. [Parse] maps EDTF text to the
// value model in the types package, and [Format] maps a value back to
// canonical text:
//
//	v, err := edtf.Parse("2020-05-17")
//	if err != nil {
//	    // not valid EDTF
//	}
//	fmt.Println(edtf.Format(v)) // "2020-05-17"
//
// Values are immutable plain data; both functions are safe for
// concurrent use.
//
// # Supported forms
//
// Level 0 plus a practical subset of Level 1:
//
//   - Calendar dates at year, year-month, or year-month-day precision,
//     validated against the hybrid Julian/Gregorian calendar (leap
//     years, month lengths, and the missing days of September 1752).
//   - Uncertainty ('?'), approximation ('~'), and the combined marker
//     ('%') as trailing qualifiers.
//   - Seasons: "2021-21" is spring 2021.
//   - Expanded years: "Y12034", "Y-17000".
//   - Intervals: "2020/2021-05", open or unknown on either side as in
//     "2020/..", "../2021", "2020/", "/2021".
//   - Lists: "2020,2021-05".
//   - Masked dates: "19XX-05-XX" parses to the interval bounding every
//     date it could denote.
//
// Level 2 constructs (exponential years, set notation, per-component
// qualification, times and timezones) are rejected.
//
// # Canonical form
//
// [Format] normalizes: years are zero-padded to four digits or rendered
// in the Y-prefixed form, months and days are zero-padded, absent
// interval sides render as "..", and both qualifier flags together
// render as the single '%' marker. Format(Parse(x)) therefore
// reproduces x only for inputs already in canonical form.
package edtf
