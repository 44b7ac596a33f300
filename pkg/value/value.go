// Package value implements the model values exchanged between the UI layer
// and the logic layer.
//
// A Value holds at most one populated list: strings, booleans, ints, or
// date-times. The zero Value is empty and is what a cleared input reports.
package value

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateTime is a calendar date with an optional time of day, interpreted as UTC.
type DateTime struct {
	Year   int `json:"year" yaml:"year"`
	Month  int `json:"month" yaml:"month"`
	Day    int `json:"day" yaml:"day"`
	Hour   int `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute int `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second int `json:"second,omitempty" yaml:"second,omitempty"`
}

// Time returns d as a UTC time.Time.
func (d DateTime) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
}

// UTCMillis returns milliseconds since the Unix epoch.
func (d DateTime) UTCMillis() int64 {
	return d.Time().UnixMilli()
}

// DateTimeFromMillis converts milliseconds since the Unix epoch to a DateTime.
func DateTimeFromMillis(ms int64) DateTime {
	t := time.UnixMilli(ms).UTC()
	return DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func (d DateTime) String() string {
	return d.Time().Format(time.DateTime)
}

// Value is a logic-layer model value.
type Value struct {
	Strings   []string   `json:"strings,omitempty" yaml:"strings,omitempty"`
	Booleans  []bool     `json:"booleans,omitempty" yaml:"booleans,omitempty"`
	Ints      []int      `json:"ints,omitempty" yaml:"ints,omitempty"`
	DateTimes []DateTime `json:"dates,omitempty" yaml:"dates,omitempty"`
}

// Strings returns a string list value.
func Strings(s ...string) Value { return Value{Strings: s} }

// Booleans returns a boolean list value.
func Booleans(b ...bool) Value { return Value{Booleans: b} }

// Ints returns an integer list value.
func Ints(i ...int) Value { return Value{Ints: i} }

// DateTimes returns a date-time list value.
func DateTimes(d ...DateTime) Value { return Value{DateTimes: d} }

// IsEmpty reports whether no list is populated.
func (v Value) IsEmpty() bool {
	return len(v.Strings) == 0 && len(v.Booleans) == 0 && len(v.Ints) == 0 && len(v.DateTimes) == 0
}

// BoolSingleton returns the single boolean held by v.
func (v Value) BoolSingleton() (bool, bool) {
	if len(v.Booleans) != 1 || len(v.Strings)+len(v.Ints)+len(v.DateTimes) != 0 {
		return false, false
	}
	return v.Booleans[0], true
}

// StringSingleton returns the single string held by v.
func (v Value) StringSingleton() (string, bool) {
	if len(v.Strings) != 1 || len(v.Booleans)+len(v.Ints)+len(v.DateTimes) != 0 {
		return "", false
	}
	return v.Strings[0], true
}

// IsDateSingleton reports whether v holds exactly one date-time.
func (v Value) IsDateSingleton() bool {
	return len(v.DateTimes) == 1 && len(v.Strings)+len(v.Booleans)+len(v.Ints) == 0
}

// Equal reports whether a and b hold the same lists. Nil and empty lists are equal.
func Equal(a, b Value) bool {
	return slices.Equal(a.Strings, b.Strings) &&
		slices.Equal(a.Booleans, b.Booleans) &&
		slices.Equal(a.Ints, b.Ints) &&
		slices.Equal(a.DateTimes, b.DateTimes)
}

func (v Value) String() string {
	switch {
	case len(v.Strings) > 0:
		return fmt.Sprintf("strings%q", v.Strings)
	case len(v.Booleans) > 0:
		return fmt.Sprintf("booleans%v", v.Booleans)
	case len(v.Ints) > 0:
		return fmt.Sprintf("ints%v", v.Ints)
	case len(v.DateTimes) > 0:
		parts := make([]string, len(v.DateTimes))
		for i, d := range v.DateTimes {
			parts[i] = d.String()
		}
		return "dates[" + strings.Join(parts, " ") + "]"
	default:
		return "empty"
	}
}
