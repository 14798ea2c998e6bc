package trip

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "9am", input: "09:00", want: 540},
		{name: "noon", input: "12:00", want: 720},
		{name: "with minutes", input: "18:30", want: 1110},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "missing zero pad falls back", input: "9:00", want: 540},
		{name: "empty falls back", input: "", want: 540},
		{name: "garbage falls back", input: "ab:cd", want: 540},
		{name: "no separator falls back", input: "09-00", want: 540},
		{name: "hour out of range falls back", input: "25:00", want: 540},
		{name: "minute out of range falls back", input: "10:75", want: 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseClock(tt.input)
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "midnight", input: 0, want: "00:00"},
		{name: "9am", input: 540, want: "09:00"},
		{name: "with minutes", input: 570, want: "09:30"},
		{name: "last minute", input: 1439, want: "23:59"},
		{name: "wraps at midnight", input: 1440, want: "00:00"},
		{name: "wraps past midnight", input: 1470, want: "00:30"},
		{name: "wraps a full extra day", input: 2 * 1440, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClock(tt.input)
			if got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "07:15", "09:00", "13:45", "23:59"} {
		if got := FormatClock(ParseClock(s)); got != s {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", s, got)
		}
	}
}
