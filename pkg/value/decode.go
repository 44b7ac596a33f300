package value

import (
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/platform"
)

// FromAny decodes an untyped payload, as produced by the JSON codec or a YAML
// decoder, into a Value. Recognized keys are "strings", "booleans", "ints",
// and "dates". Dates may be given as millisecond timestamps or as objects with
// year/month/day/hour/minute/second fields.
func FromAny(raw any) (Value, error) {
	if raw == nil {
		return Value{}, nil
	}
	m := platform.ParseMap(raw)
	if m == nil {
		return Value{}, &errors.ParseError{DataType: "value", Got: raw}
	}

	var v Value
	populated := 0
	if items, ok := m["strings"]; ok {
		list, ok := platform.ParseSlice(items)
		if !ok {
			return Value{}, &errors.ParseError{Field: "strings", DataType: "[]string", Got: items}
		}
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return Value{}, &errors.ParseError{Field: "strings", DataType: "string", Got: item}
			}
			v.Strings = append(v.Strings, s)
		}
		populated++
	}
	if items, ok := m["booleans"]; ok {
		list, ok := platform.ParseSlice(items)
		if !ok {
			return Value{}, &errors.ParseError{Field: "booleans", DataType: "[]bool", Got: items}
		}
		for _, item := range list {
			b, ok := item.(bool)
			if !ok {
				return Value{}, &errors.ParseError{Field: "booleans", DataType: "bool", Got: item}
			}
			v.Booleans = append(v.Booleans, b)
		}
		populated++
	}
	if items, ok := m["ints"]; ok {
		list, ok := platform.ParseSlice(items)
		if !ok {
			return Value{}, &errors.ParseError{Field: "ints", DataType: "[]int", Got: items}
		}
		for _, item := range list {
			n, ok := platform.ToInt(item)
			if !ok {
				return Value{}, &errors.ParseError{Field: "ints", DataType: "int", Got: item}
			}
			v.Ints = append(v.Ints, n)
		}
		populated++
	}
	if items, ok := m["dates"]; ok {
		list, ok := platform.ParseSlice(items)
		if !ok {
			return Value{}, &errors.ParseError{Field: "dates", DataType: "[]date", Got: items}
		}
		for _, item := range list {
			d, err := dateFromAny(item)
			if err != nil {
				return Value{}, err
			}
			v.DateTimes = append(v.DateTimes, d)
		}
		populated++
	}
	if populated > 1 {
		return Value{}, &errors.ParseError{DataType: "value with a single list", Got: raw}
	}
	return v, nil
}

func dateFromAny(raw any) (DateTime, error) {
	if ms, ok := platform.ToInt64(raw); ok {
		return DateTimeFromMillis(ms), nil
	}
	m := platform.ParseMap(raw)
	if m == nil {
		return DateTime{}, &errors.ParseError{Field: "dates", DataType: "date", Got: raw}
	}
	field := func(key string) int {
		n, _ := platform.ToInt(m[key])
		return n
	}
	d := DateTime{
		Year:   field("year"),
		Month:  field("month"),
		Day:    field("day"),
		Hour:   field("hour"),
		Minute: field("minute"),
		Second: field("second"),
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return DateTime{}, &errors.ParseError{Field: "dates", DataType: "date", Got: raw}
	}
	return d, nil
}
