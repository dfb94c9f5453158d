package request

import (
	"math"
	"strconv"
	"strings"
)

// LenientNumber is the single place where untrusted form input is coerced
// into a number. The office console sends depths and rates as whatever the
// operator typed, sometimes quoted; anything unparseable (or non-finite)
// becomes 0 here, on purpose and only here. The pricing engine itself never
// coerces.
type LenientNumber float64

func (n *LenientNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = LenientNumber(v)
	return nil
}

func (n LenientNumber) Float64() float64 {
	return float64(n)
}
