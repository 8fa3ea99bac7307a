package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// Day is one of the six teaching days, Monday through Saturday.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// NumberOfDays is the size of the fixed day set.
const NumberOfDays = 6

// Days lists the teaching days in their fixed order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var daySymbols = [...]string{"", "一", "二", "三", "四", "五", "六"}

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Valid reports whether d is one of the six teaching days.
func (d Day) Valid() bool {
	return d >= Monday && d <= Saturday
}

// Index returns the zero based position of d in Days.
func (d Day) Index() int {
	return int(d) - 1
}

// Symbol returns the CJK numeral used in timetables, e.g. "一" for Monday.
func (d Day) Symbol() string {
	if !d.Valid() {
		return "?"
	}
	return daySymbols[d]
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// MarshalText encodes the day as its symbol.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &InvalidDayError{Value: d.String()}
	}
	return []byte(d.Symbol()), nil
}

// UnmarshalText accepts anything ParseDay accepts.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var dayPrefixes = []string{"星期", "禮拜", "礼拜", "週", "周"}

// ParseDay converts a day label to a Day. It accepts the CJK symbols 一..六
// with or without a 星期/週 prefix, English names and their three letter
// abbreviations in any case, and full-width forms of all of these.
func ParseDay(s string) (Day, error) {
	v := strings.TrimSpace(width.Fold.String(s))
	for _, p := range dayPrefixes {
		if rest, ok := strings.CutPrefix(v, p); ok {
			v = strings.TrimSpace(rest)
			break
		}
	}
	for i := 1; i <= NumberOfDays; i++ {
		if v == daySymbols[i] {
			return Day(i), nil
		}
	}
	folder := cases.Fold()
	key := folder.String(v)
	if len(key) >= 3 {
		for i := 1; i <= NumberOfDays; i++ {
			name := folder.String(dayNames[i])
			if key == name || key == name[:3] {
				return Day(i), nil
			}
		}
	}
	return 0, &InvalidDayError{Value: s}
}
