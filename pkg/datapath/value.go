package datapath

import (
	"fmt"
	"strconv"
)

// String renders the value for output. Missing, Map and Callable values
// render as an empty string.
func (v Value) String() string {
	if v.kind != Scalar {
		return ""
	}
	return ToString(v.raw)
}

// Call invokes a Callable value with arg. It reports false when v is not
// callable, in which case the returned string is empty.
func (v Value) Call(arg Value) (string, bool) {
	if v.kind != Callable {
		return "", false
	}

	switch fn := v.raw.(type) {
	case Func:
		return fn(arg.raw), true
	case func(any) string:
		return fn(arg.raw), true
	case func(string) string:
		return fn(arg.String()), true
	case func(any) any:
		return ToString(fn(arg.raw)), true
	}
	return "", false
}

// ToString coerces a scalar to its display form. Floats use the shortest
// representation, so 3.0 renders as "3".
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int8:
		return strconv.FormatInt(int64(s), 10)
	case int16:
		return strconv.FormatInt(int64(s), 10)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case uint8:
		return strconv.FormatUint(uint64(s), 10)
	case uint16:
		return strconv.FormatUint(uint64(s), 10)
	case uint32:
		return strconv.FormatUint(uint64(s), 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}
