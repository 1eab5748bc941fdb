package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical textual form of every date field.
const DateLayout = "2006-01-02"

// Month-first layouts come before their day-first twins so that ambiguous
// input like 03/04/2020 reads as March 4th.
var dateLayouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2",
	"1/2/2006",
	"2/1/2006",
	"1-2-2006",
	"2-1-2006",
	"1/2/06",
	"1/2/06 15:04",
	"1-2-06",
	"2.1.2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"20060102",
}

// spreadsheet serial 0 is 1899-12-30 once the 1900 leap-year bug is folded in.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial is 9999-12-31, the last date a workbook can hold.
const maxSerial = 2958465

// NormalizeDate renders v as YYYY-MM-DD. Strings are tried against a fixed
// set of layouts and then as a spreadsheet serial date; numbers are read as
// serial dates. Anything that cannot be read yields "".
func NormalizeDate(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return NormalizeDate(*t)
	case string:
		return parseDateString(t)
	case *string:
		if t == nil {
			return ""
		}
		return parseDateString(*t)
	case float64:
		return fromSerial(t)
	case int:
		return fromSerial(float64(t))
	case int64:
		return fromSerial(float64(t))
	default:
		return ""
	}
}

func parseDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	// raw workbook cells carry dates as serial numbers
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(serial)
	}
	return ""
}

func fromSerial(serial float64) string {
	if math.IsNaN(serial) || serial < 1 || serial > maxSerial {
		return ""
	}
	return serialEpoch.AddDate(0, 0, int(serial)).Format(DateLayout)
}
