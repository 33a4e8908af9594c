package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRpsOutcome(t *testing.T) {
	cases := []struct {
		choice    string
		housePick string
		want      int64
	}{
		{"rock", "rock", 0},
		{"rock", "scissors", 1},
		{"rock", "paper", -1},
		{"paper", "paper", 0},
		{"paper", "rock", 1},
		{"paper", "scissors", -1},
		{"scissors", "scissors", 0},
		{"scissors", "paper", 1},
		{"scissors", "rock", -1},
	}

	for _, tc := range cases {
		t.Run(tc.choice+"_vs_"+tc.housePick, func(t *testing.T) {
			assert.Equal(t, tc.want, rpsOutcome(tc.choice, tc.housePick))
		})
	}
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "0", FormatBalance(0))
	assert.Equal(t, "999", FormatBalance(999))
	assert.Equal(t, "1,000", FormatBalance(1000))
	assert.Equal(t, "1,234,567", FormatBalance(1234567))
	assert.Equal(t, "-50", FormatBalance(-50))
	assert.Equal(t, "-12,345", FormatBalance(-12345))
}
