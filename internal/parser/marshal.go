package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ahankinson/edtf-go/types"
)

// Marshal renders a value in canonical EDTF form. It is total and
// deterministic: the output depends only on the value, not on whatever
// text it was parsed from. Absent interval sides always render as "..",
// and the combined '%' marker always replaces a "?~" pair.
func Marshal(v types.Value) string {
	var buf bytes.Buffer
	marshalValue(&buf, v)
	return buf.String()
}

func marshalValue(buf *bytes.Buffer, v types.Value) {
	switch v := v.(type) {
	case types.Single:
		marshalDate(buf, v.Date)
	case types.Interval:
		marshalIntervalSide(buf, v.Start)
		buf.WriteByte('/')
		marshalIntervalSide(buf, v.End)
	case types.List:
		for i, member := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			marshalValue(buf, member)
		}
	}
}

func marshalIntervalSide(buf *bytes.Buffer, d *types.Date) {
	if d == nil {
		buf.WriteString("..")
		return
	}
	marshalDate(buf, *d)
}

func marshalDate(buf *bytes.Buffer, d types.Date) {
	marshalDateValue(buf, d.Value)
	switch {
	case d.Uncertain && d.Approximate:
		buf.WriteByte('%')
	case d.Uncertain:
		buf.WriteByte('?')
	case d.Approximate:
		buf.WriteByte('~')
	}
}

func marshalDateValue(buf *bytes.Buffer, dv types.DateValue) {
	switch dv := dv.(type) {
	case types.Year:
		marshalYear(buf, dv.Value)
	case types.YearMonth:
		marshalYear(buf, dv.Year)
		fmt.Fprintf(buf, "-%02d", int(dv.Month))
	case types.YearMonthDay:
		marshalYear(buf, dv.Year)
		fmt.Fprintf(buf, "-%02d-%02d", int(dv.Month), dv.Day)
	case types.Season:
		marshalYear(buf, dv.Year)
		buf.WriteByte('-')
		buf.WriteString(strconv.Itoa(int(dv.Name)))
	}
}

// marshalYear zero-pads years in the plain 4-digit range and falls back
// to the Y-prefixed signed form for everything else.
func marshalYear(buf *bytes.Buffer, year int) {
	if year < 0 || year >= 10000 {
		buf.WriteByte('Y')
		buf.WriteString(strconv.Itoa(year))
		return
	}
	fmt.Fprintf(buf, "%04d", year)
}
