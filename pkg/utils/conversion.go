package utils

import "strconv"

// StringToUint64 parses a numeric ID from a URL parameter.
// Returns 0 when the string is not a number; callers treat 0 as "not found".
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
