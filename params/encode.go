package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encode flattens v into query fragments, each either an escaped key or
// key=value. Nested mappings extend the key with ".name", sequences with
// "[index]". Fragment order follows traversal order and is never sorted.
//
// Encode("", Mapping{{"arr", Sequence{Number(12), Text("foo"), Bool(true)}}})
// yields ["arr%5B0%5D=12", "arr%5B1%5D=foo", "arr%5B2%5D"].
func Encode(prefix string, v Value) []string {
	return appendFragments(nil, prefix, v)
}

// Query returns the encoded query string for v including the leading "?",
// or "" when v produces no fragments.
func Query(v Value) string {
	fragments := Encode("", v)
	if len(fragments) == 0 {
		return ""
	}
	return "?" + strings.Join(fragments, "&")
}

func appendFragments(dst []string, prefix string, v Value) []string {
	switch val := v.(type) {
	case nil, Absent, Null:
		return dst
	case Bool:
		if val {
			dst = append(dst, Escape(prefix))
		}
		return dst
	case Number:
		return append(dst, Escape(prefix)+"="+Escape(FormatNumber(float64(val))))
	case Text:
		return append(dst, Escape(prefix)+"="+Escape(string(val)))
	case Sequence:
		for i, item := range val {
			dst = appendFragments(dst, prefix+"["+strconv.Itoa(i)+"]", item)
		}
		return dst
	case Mapping:
		dotted := ""
		if prefix != "" {
			dotted = prefix + "."
		}
		for _, e := range val {
			dst = appendFragments(dst, dotted+e.Key, e.Value)
		}
		return dst
	default:
		panic(fmt.Sprintf("params: unsupported value type %T", v))
	}
}

// FormatNumber renders f the way JavaScript's String(number) does: integral
// values without a fraction, exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go pads exponents to two digits ("1e-07"); JavaScript does not.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
