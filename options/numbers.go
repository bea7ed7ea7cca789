package options

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// parseInt converts a value to an integer the way a lenient integer parser does:
// strings yield their leading integer prefix ("150px" → 150, "1.9" → 1),
// floats are truncated towards zero, durations are taken in milliseconds.
// It returns false for everything else, including NaN and infinities.
func parseInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return clampInt64(x), true
	case uint:
		return clampUint64(uint64(x)), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return clampUint64(uint64(x)), true
	case uint64:
		return clampUint64(x), true
	case float32:
		return truncate(float64(x))
	case float64:
		return truncate(x)
	case time.Duration:
		return clampInt64(x.Milliseconds()), true
	case string:
		return leadingInt(x)
	case []byte:
		return leadingInt(string(x))
	}
	return 0, false
}

// leadingInt parses the integer prefix of a string, after leading white space
// and an optional sign.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil { // out of range: ParseInt has clamped n
		tracer().Debugf("integer %q out of range", s[:end])
	}
	return clampInt64(n), true
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	if f >= math.MaxInt32 {
		return math.MaxInt32, true
	} else if f <= math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}

// Results are kept within 32 bits, which is plenty for pixels and milliseconds
// and keeps conversions to time.Duration from overflowing.
func clampInt64(n int64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	} else if n < math.MinInt32 {
		return math.MinInt32
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
