package icon

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		charging   bool
		want       string
	}{
		{name: "discharging", percentage: 42, charging: false, want: "42"},
		{name: "charging", percentage: 50, charging: true, want: "50*"},
		{name: "charging at threshold", percentage: 97, charging: true, want: "97*"},
		{name: "charging above threshold", percentage: 98, charging: true, want: FullMarker},
		{name: "charging and full", percentage: 100, charging: true, want: FullMarker},
		{name: "99 charging is not 99*", percentage: 99, charging: true, want: "^_^"},
		{name: "full but not charging", percentage: 100, charging: false, want: "100"},
		{name: "empty", percentage: 0, charging: false, want: "0"},
		{name: "empty and charging", percentage: 0, charging: true, want: "0*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatText(tt.percentage, tt.charging))
		})
	}
}

func TestFormatTextTotal(t *testing.T) {
	for p := 0; p <= 100; p++ {
		for _, charging := range []bool{false, true} {
			got := FormatText(p, charging)
			assert.Equal(t, got, FormatText(p, charging), "not deterministic for %d/%v", p, charging)
			assert.NotEmpty(t, got)

			digits := strconv.Itoa(p)
			switch {
			case charging && p > 97:
				assert.Equal(t, FullMarker, got)
			case charging:
				assert.Equal(t, digits+ChargingMarker, got)
			default:
				assert.Equal(t, digits, got)
			}
		}
	}
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, ValidatePercentage(0))
	assert.NoError(t, ValidatePercentage(100))
	assert.ErrorIs(t, ValidatePercentage(-1), ErrPercentageOutOfRange)
	assert.ErrorIs(t, ValidatePercentage(101), ErrPercentageOutOfRange)
}
