// Package quotenum generates and parses human-readable quotation numbers.
//
// Format: InventuAgro{YY}{MM}{DD}-{NN}, where NN is a two-digit sequence
// starting at 01 for the first quotation issued on that calendar date.
package quotenum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Prefix is the fixed company prefix carried by every quotation number.
const Prefix = "InventuAgro"

var numberPattern = regexp.MustCompile(`^InventuAgro(\d{2})(\d{2})(\d{2})-\d{2}$`)

// DatePrefix returns the date-scoped prefix for a quotation date,
// e.g. InventuAgro260210 for 2026-02-10.
func DatePrefix(date time.Time) string {
	return Prefix + date.Format("060102")
}

// Next computes the next quotation number for the given date from a
// snapshot of all existing quotation numbers. Numbers that do not share
// the exact date prefix are ignored; the numeric suffix after the last
// dash of each matching number is extracted and the maximum incremented.
//
// The function is pure: identical inputs always yield the same number.
// Two concurrent creations working from stale snapshots can compute the
// same number; the storage layer guards against that with a uniqueness
// constraint on the number column.
func Next(existing []string, date time.Time) string {
	prefix := DatePrefix(date)

	max := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		idx := strings.LastIndex(number, "-")
		if idx < 0 {
			continue
		}
		seq, err := strconv.Atoi(number[idx+1:])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}

	return fmt.Sprintf("%s-%02d", prefix, max+1)
}

// ParseDate extracts the embedded calendar date from a well-formed
// quotation number. The two-digit year is interpreted as 2000+YY.
// Returns ok=false on any non-matching format, never an error.
func ParseDate(number string) (time.Time, bool) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return time.Time{}, false
	}

	yy, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	dd, _ := strconv.Atoi(m[3])

	return time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC), true
}
