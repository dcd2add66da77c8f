// Package strutil provides small string conversion helpers for query
// parameter parsing.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 on failure.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as an int64, returning 0 on failure.
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToFloat64 parses s as a float64, returning 0 on failure.
func ConvertToFloat64(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
