package trip

import "fmt"

// MinutesPerDay is the wraparound boundary for clock arithmetic.
const MinutesPerDay = 24 * 60

// FallbackMinutes is the anchor used when a stored time cannot be parsed.
// A single bad record must never block the rest of a day from recomputing.
const FallbackMinutes = 9 * 60 // 09:00

// ParseClock converts "HH:MM" to minutes since midnight.
// Malformed input falls back to 09:00 rather than failing.
func ParseClock(s string) int {
	if len(s) != 5 || s[2] != ':' {
		return FallbackMinutes
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h >= 24 || m >= 60 {
		return FallbackMinutes
	}
	return h*60 + m
}

// FormatClock converts minutes since midnight to zero-padded "HH:MM",
// wrapping values past midnight back into [0,1440). Negative input is not a
// supported case; callers guarantee non-negative offsets.
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
