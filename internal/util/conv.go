package util

import (
	"math"
	"strconv"
)

// MustParseUint converts s to an unsigned integer, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// MsToMinutes converts active milliseconds to whole minutes, rounding to the
// nearest minute and flooring negative input at 0.
func MsToMinutes(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / 60000.0))
}
