package util

import "testing"

func TestParseOffset(t *testing.T) {
	cases := []struct {
		input     string
		direction string
		steps     int
	}{
		{"ATM", "ATM", 0},
		{"atm", "ATM", 0},
		{"ITM1", "ITM", 1},
		{"itm2", "ITM", 2},
		{"OTM15", "OTM", 15},
		{"OTM50", "OTM", 50},
		{" otm3 ", "OTM", 3},
	}
	for _, tc := range cases {
		direction, steps, ok := ParseOffset(tc.input)
		if !ok {
			t.Errorf("%q: rejected", tc.input)
			continue
		}
		if direction != tc.direction || steps != tc.steps {
			t.Errorf("%q: want %s/%d, got %s/%d", tc.input, tc.direction, tc.steps, direction, steps)
		}
	}

	for _, input := range []string{"", "ITM", "OTM", "ITM0", "OTM51", "ITM100", "XTM2", "ATM1"} {
		if _, _, ok := ParseOffset(input); ok {
			t.Errorf("%q: accepted", input)
		}
	}
}
