package event

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// Value is an optional attribute read from an event. The zero Value is absent.
type Value struct {
	r gjson.Result
}

func valueOf(r gjson.Result) Value {
	return Value{r: r}
}

// Present reports whether the attribute exists in the payload, even as null.
func (v Value) Present() bool {
	return v.r.Exists()
}

func (v Value) Null() bool {
	return v.r.Exists() && v.r.Type == gjson.Null
}

// String returns the display form: strings unquoted, numbers and booleans
// as written, arrays and objects as raw JSON, null and absent as "".
func (v Value) String() string {
	if !v.r.Exists() {
		return ""
	}
	return v.r.String()
}

// Int returns the value as an integer when it is an integral JSON number.
func (v Value) Int() (int, bool) {
	if v.r.Type != gjson.Number {
		return 0, false
	}
	if v.r.Num != math.Trunc(v.r.Num) {
		return 0, false
	}
	return int(v.r.Num), true
}

// Bool returns the value when it is a JSON boolean.
func (v Value) Bool() (bool, bool) {
	switch v.r.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	return false, false
}

func (v Value) Number() (float64, bool) {
	if v.r.Type != gjson.Number {
		return 0, false
	}
	return v.r.Num, true
}

// Strings returns a list of strings. Absent, null, empty string and empty
// list all yield nil. Anything other than a list of strings is an error.
func (v Value) Strings() ([]string, error) {
	switch {
	case !v.r.Exists(), v.r.Type == gjson.Null:
		return nil, nil
	case v.r.Type == gjson.String && v.r.Str == "":
		return nil, nil
	case !v.r.IsArray():
		return nil, fmt.Errorf("expected a list, got %s", v.r.Raw)
	}
	items := v.r.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("item %d is not a string: %s", i, item.Raw)
		}
		out = append(out, item.Str)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (v Value) Raw() string {
	return v.r.Raw
}
