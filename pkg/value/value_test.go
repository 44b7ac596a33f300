package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"both empty", Value{}, Value{}, true},
		{"nil vs empty slice", Value{Strings: nil}, Value{Strings: []string{}}, true},
		{"same strings", Strings("a", "b"), Strings("a", "b"), true},
		{"order matters", Strings("a", "b"), Strings("b", "a"), false},
		{"different kinds", Booleans(true), Ints(1), false},
		{"booleans", Booleans(false), Booleans(false), true},
		{"dates", DateTimes(DateTime{Year: 2020, Month: 1, Day: 2}), DateTimes(DateTime{Year: 2020, Month: 1, Day: 2}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSingletons(t *testing.T) {
	if b, ok := Booleans(true).BoolSingleton(); !ok || !b {
		t.Error("Booleans(true) should be a boolean singleton")
	}
	if _, ok := Booleans(true, false).BoolSingleton(); ok {
		t.Error("two booleans are not a singleton")
	}
	if _, ok := Strings("x").BoolSingleton(); ok {
		t.Error("a string is not a boolean singleton")
	}
	if s, ok := Strings("x").StringSingleton(); !ok || s != "x" {
		t.Error("Strings(x) should be a string singleton")
	}
	if !DateTimes(DateTime{Year: 2021, Month: 3, Day: 4}).IsDateSingleton() {
		t.Error("one date should be a date singleton")
	}
	if (Value{}).IsDateSingleton() {
		t.Error("empty value is not a date singleton")
	}
}

func TestDateTimeMillisRoundTrip(t *testing.T) {
	d := DateTime{Year: 2022, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 1}
	if got := DateTimeFromMillis(d.UTCMillis()); got != d {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Value
		wantErr bool
	}{
		{"nil", nil, Value{}, false},
		{"strings", map[string]any{"strings": []any{"a", "b"}}, Strings("a", "b"), false},
		{"booleans", map[string]any{"booleans": []any{true}}, Booleans(true), false},
		{"ints from json floats", map[string]any{"ints": []any{float64(1), float64(2)}}, Ints(1, 2), false},
		{"dates as objects", map[string]any{"dates": []any{map[string]any{"year": 2020, "month": 5, "day": 6}}},
			DateTimes(DateTime{Year: 2020, Month: 5, Day: 6}), false},
		{"dates as millis", map[string]any{"dates": []any{float64(0)}},
			DateTimes(DateTime{Year: 1970, Month: 1, Day: 1}), false},
		{"yaml map", map[any]any{"strings": []any{"y"}}, Strings("y"), false},
		{"wrong element type", map[string]any{"booleans": []any{"true"}}, Value{}, true},
		{"two lists", map[string]any{"strings": []any{"a"}, "ints": []any{1}}, Value{}, true},
		{"bad month", map[string]any{"dates": []any{map[string]any{"year": 2020, "month": 13, "day": 1}}}, Value{}, true},
		{"not a map", "strings", Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromAny() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !Equal(got, tt.want) {
				t.Errorf("FromAny() mismatch (-want +got):\n%s", cmp.Diff(tt.want, got))
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := (Value{}).String(); got != "empty" {
		t.Errorf("String() = %q, want empty", got)
	}
	if got := Booleans(true).String(); got != "booleans[true]" {
		t.Errorf("String() = %q", got)
	}
}
