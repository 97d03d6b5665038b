package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahankinson/edtf-go/types"
)

func single(dv types.DateValue) types.Value {
	return types.Single{Date: types.Date{Value: dv}}
}

func datePtr(dv types.DateValue) *types.Date {
	return &types.Date{Value: dv}
}

func TestParseSingleDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  types.Value
	}{
		{"2020", single(types.Year{Value: 2020})},
		{"0987", single(types.Year{Value: 987})},
		{"+2020", single(types.Year{Value: 2020})},
		{"-0100", single(types.Year{Value: -100})},
		{"2020-05", single(types.YearMonth{Year: 2020, Month: types.May})},
		{"2020-12", single(types.YearMonth{Year: 2020, Month: types.December})},
		{"2020-05-17", single(types.YearMonthDay{Year: 2020, Month: types.May, Day: 17})},
		{"2000-02-29", single(types.YearMonthDay{Year: 2000, Month: types.February, Day: 29})},
		{"1752-09-02", single(types.YearMonthDay{Year: 1752, Month: types.September, Day: 2})},
		{"1752-09-14", single(types.YearMonthDay{Year: 1752, Month: types.September, Day: 14})},
		{"-0044-03-15", single(types.YearMonthDay{Year: -44, Month: types.March, Day: 15})},
		// Negative zero normalizes to year 0.
		{"-0000-01-01", single(types.YearMonthDay{Year: 0, Month: types.January, Day: 1})},
		{"2021-21", single(types.Season{Year: 2021, Name: types.Spring})},
		{"2021-22", single(types.Season{Year: 2021, Name: types.Summer})},
		{"2021-23", single(types.Season{Year: 2021, Name: types.Autumn})},
		{"2021-24", single(types.Season{Year: 2021, Name: types.Winter})},
		{"Y12034", single(types.Year{Value: 12034})},
		{"Y-17000", single(types.Year{Value: -17000})},
		{"Y123", single(types.Year{Value: 123})},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQualifiers(t *testing.T) {
	t.Parallel()

	qualified := func(u, a bool) types.Value {
		return types.Single{Date: types.Date{Value: types.Year{Value: 2020}, Uncertain: u, Approximate: a}}
	}

	tests := []struct {
		input string
		want  types.Value
	}{
		{"2020?", qualified(true, false)},
		{"2020~", qualified(false, true)},
		{"2020%", qualified(true, true)},
		{"2020?~", qualified(true, true)},
		{"2020~?", qualified(true, true)},
		// Duplicate markers are idempotent.
		{"2020??", qualified(true, false)},
		{"2020~~", qualified(false, true)},
		{"2020?%~", qualified(true, true)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("qualifier on month precision", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2004-06~")
		require.NoError(t, err)
		assert.Equal(t, types.Single{Date: types.Date{
			Value:       types.YearMonth{Year: 2004, Month: types.June},
			Approximate: true,
		}}, got)
	})

	t.Run("qualifier on season", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2021-21?")
		require.NoError(t, err)
		assert.Equal(t, types.Single{Date: types.Date{
			Value:     types.Season{Year: 2021, Name: types.Spring},
			Uncertain: true,
		}}, got)
	})

	t.Run("qualifier on expanded year", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("Y12034~")
		require.NoError(t, err)
		assert.Equal(t, types.Single{Date: types.Date{
			Value:       types.Year{Value: 12034},
			Approximate: true,
		}}, got)
	})
}

func TestParseIntervals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  types.Value
	}{
		{"2020/2021", types.Interval{
			Start: datePtr(types.Year{Value: 2020}),
			End:   datePtr(types.Year{Value: 2021}),
		}},
		{"2004-06/2006-08", types.Interval{
			Start: datePtr(types.YearMonth{Year: 2004, Month: types.June}),
			End:   datePtr(types.YearMonth{Year: 2006, Month: types.August}),
		}},
		{"2020/..", types.Interval{Start: datePtr(types.Year{Value: 2020})}},
		{"2020/open", types.Interval{Start: datePtr(types.Year{Value: 2020})}},
		{"2020/", types.Interval{Start: datePtr(types.Year{Value: 2020})}},
		{"../2021-05-17", types.Interval{End: datePtr(types.YearMonthDay{Year: 2021, Month: types.May, Day: 17})}},
		{"open/2021-05-17", types.Interval{End: datePtr(types.YearMonthDay{Year: 2021, Month: types.May, Day: 17})}},
		{"/2021-05-17", types.Interval{End: datePtr(types.YearMonthDay{Year: 2021, Month: types.May, Day: 17})}},
		{"../..", types.Interval{}},
		{"2021-21/2022-23", types.Interval{
			Start: datePtr(types.Season{Year: 2021, Name: types.Spring}),
			End:   datePtr(types.Season{Year: 2022, Name: types.Autumn}),
		}},
		{"2004-06-11%/2004-06-12~", types.Interval{
			Start: &types.Date{
				Value:       types.YearMonthDay{Year: 2004, Month: types.June, Day: 11},
				Uncertain:   true,
				Approximate: true,
			},
			End: &types.Date{
				Value:       types.YearMonthDay{Year: 2004, Month: types.June, Day: 12},
				Approximate: true,
			},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLists(t *testing.T) {
	t.Parallel()

	t.Run("two members", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2020,2021-05")
		require.NoError(t, err)
		assert.Equal(t, types.List{Values: []types.Value{
			single(types.Year{Value: 2020}),
			single(types.YearMonth{Year: 2021, Month: types.May}),
		}}, got)
	})

	t.Run("space-padded commas", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2020 , 2021 , 2022-21")
		require.NoError(t, err)
		assert.Equal(t, types.List{Values: []types.Value{
			single(types.Year{Value: 2020}),
			single(types.Year{Value: 2021}),
			single(types.Season{Year: 2022, Name: types.Spring}),
		}}, got)
	})

	t.Run("tab-padded commas", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2020\t,\t2021")
		require.NoError(t, err)
		assert.Equal(t, types.List{Values: []types.Value{
			single(types.Year{Value: 2020}),
			single(types.Year{Value: 2021}),
		}}, got)
	})

	t.Run("members carry independent flags", func(t *testing.T) {
		t.Parallel()
		got, err := Parse("2020?,2021~,2022")
		require.NoError(t, err)
		assert.Equal(t, types.List{Values: []types.Value{
			types.Single{Date: types.Date{Value: types.Year{Value: 2020}, Uncertain: true}},
			types.Single{Date: types.Date{Value: types.Year{Value: 2021}, Approximate: true}},
			single(types.Year{Value: 2022}),
		}}, got)
	})
}

func TestParseFailures(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"..",
		"open",
		// Year width.
		"20-21",
		"202",
		"12345",
		"985-04-12",
		// Month/day width: two digits are required, not zero-padding tolerance.
		"2020-5",
		"2020-05-7",
		"2020-123",
		"2020-05-171",
		// Numeric range.
		"2016-13-08",
		"2016-00-08",
		"2016-02-39",
		"2016-02-00",
		"2016-04-31",
		// Leap years.
		"2001-02-29",
		"1900-02-29",
		// The 1752 calendar reform gap.
		"1752-09-03",
		"1752-09-05",
		"1752-09-13",
		// Seasons take no day component.
		"2021-21-05",
		// Expanded years take no suffix, and exponents are unsupported.
		"Y2020-05",
		"Y2021-21",
		"Y17E7",
		"Y17E7-12-26",
		"Y",
		"Y-",
		// Trailing content.
		"2020-05-17x",
		"2020 ",
		" 2020",
		"2020-05-17 2021",
		// Structurally invalid intervals and lists.
		"2020-",
		"2020,",
		",2020",
		"2020,,2021",
		"2020//2021",
		"2020/2021/2022",
		"199X/2020",
		"2020/19XX",
		// Unsupported Level 2 and legacy constructs.
		"1985-04-12T23:20:30",
		"2001-02-03T10:00:00Z",
		"2004-06-11/2004-06-12T10:00",
		"[1667,1668]",
		"{1667,1668}",
		"2004-(06)?-11",
		"(2004)?-06-11",
		"2004-06-(11)~",
		"2001-29",
		"156u",
		"15XX.05",
	}
	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(input)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	t.Parallel()

	t.Run("reports offset and expectation", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("2016-13-08")
		require.Error(t, err)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 5, perr.Offset)
		assert.NotEmpty(t, perr.Expected)
	})

	t.Run("trailing content offset", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("2020-05-17x")
		require.Error(t, err)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 10, perr.Offset)
		assert.Equal(t, "end of input", perr.Expected)
	})

	t.Run("message shape", func(t *testing.T) {
		t.Parallel()
		err := &ParseError{Offset: 5, Expected: "two-digit month"}
		assert.Equal(t, "expected two-digit month at offset 5", err.Error())
	})
}
