// Package convert provides millimeter-to-fractional-inch conversion and
// thickness display formatting for catalog products.
package convert

import (
	"fmt"
	"math"
)

const mmPerInch = 25.4

// MMToInches converts millimeters to a fractional-inch display string,
// rounded to the nearest 1/16". Returns "" when the rounded value is zero.
// The fraction is reduced by halving numerator and denominator while both
// are even, so 8/16 renders as 1/2.
func MMToInches(mm float64) string {
	inches := mm / mmPerInch
	sixteenths := int(math.Round(inches * 16))
	if sixteenths == 0 {
		return ""
	}

	whole := sixteenths / 16
	num := sixteenths % 16
	den := 16

	for num%2 == 0 && num != 0 {
		num /= 2
		den /= 2
	}

	if num == 0 {
		return fmt.Sprintf("%d\"", whole)
	}
	if whole == 0 {
		return fmt.Sprintf("%d/%d\"", num, den)
	}
	return fmt.Sprintf("%d %d/%d\"", whole, num, den)
}

// FormatThickness renders a thickness in millimeters with its inch
// equivalent, e.g. `12.7 mm (1/2")`. Returns "" for zero thickness.
func FormatThickness(mm float64) string {
	if mm == 0 {
		return ""
	}

	inches := MMToInches(mm)
	if inches == "" {
		return fmt.Sprintf("%v mm", trimFloat(mm))
	}
	return fmt.Sprintf("%v mm (%s)", trimFloat(mm), inches)
}

// trimFloat formats a float without trailing zeros (12.7, not 12.700000).
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
