package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToString converts a cell value read from a database row or a decoded document to text.
// It handles nil (empty text), byte slices, integral floats without a fraction ("3" instead
// of "3.000000"), booleans and timestamps (RFC 3339).
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64, bits int) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// ToStrings converts every element of a list cell and joins them with ", ", the way
// multi-value attributes are written in requirement exports.
func ToStrings(vals []any) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		if s := strings.TrimSpace(ToString(v)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
