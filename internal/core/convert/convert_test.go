package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMMToInches(t *testing.T) {
	tests := []struct {
		name string
		mm   float64
		want string
	}{
		{"zero", 0, ""},
		{"below rounding threshold", 0.5, ""},
		{"half inch", 12.7, "1/2\""},
		{"quarter inch", 6.35, "1/4\""},
		{"five sixteenths", 7.94, "5/16\""},
		{"three eighths", 9.53, "3/8\""},
		{"exactly one inch", 25.4, "1\""},
		{"one and a half", 38.1, "1 1/2\""},
		{"two inches", 50.8, "2\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MMToInches(tt.mm))
		})
	}
}

func TestFormatThickness(t *testing.T) {
	assert.Equal(t, "", FormatThickness(0))
	assert.Equal(t, "12.7 mm (1/2\")", FormatThickness(12.7))
	assert.Equal(t, "6.35 mm (1/4\")", FormatThickness(6.35))

	// Too thin for a 1/16" equivalent: millimeters only.
	assert.Equal(t, "0.5 mm", FormatThickness(0.5))
}
