package query

import "math"

// ParseSkip reads a skip path segment. Anything that is not a non-negative
// integer yields DefaultSkip.
func ParseSkip(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 0 {
		return DefaultSkip
	}
	return n
}

// ParseLimit reads a limit ("top") path segment. Anything that is not a
// non-negative integer yields DefaultLimit.
func ParseLimit(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 0 {
		return DefaultLimit
	}
	return n
}

// ParseID reads a numeric :id segment the same way, so "3abc" is id 3. It
// reports false when no digits lead the value.
func ParseID(raw string) (int, bool) {
	return parseLeadingInt(raw)
}

// ParseDirection maps a raw direction onto Ascending or Descending. Unknown
// values come back as-is and are ignored by Run.
func ParseDirection(raw string) Direction {
	return Direction(raw)
}

// parseLeadingInt accepts an optional sign followed by decimal digits and
// ignores whatever trails them, so "12abc" reads as 12 and "3.9" as 3.
// Values that overflow saturate.
func parseLeadingInt(raw string) (int, bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r') {
		i++
	}
	neg := false
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		neg = raw[i] == '-'
		i++
	}
	start := i
	n := 0
	for ; i < len(raw) && raw[i] >= '0' && raw[i] <= '9'; i++ {
		d := int(raw[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if i == start {
		return 0, false
	}
	if neg {
		return -n, true
	}
	return n, true
}
