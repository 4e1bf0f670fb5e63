package quotenum

import (
	"context"
	"testing"
	"time"
)

func TestNext_FirstOfDay(t *testing.T) {
	date := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	num := Next(nil, date)
	if num != "InventuAgro260210-01" {
		t.Errorf("expected InventuAgro260210-01, got %s", num)
	}
}

func TestNext_Sequencing(t *testing.T) {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	existing := []string{"InventuAgro260210-01"}
	num := Next(existing, date)
	if num != "InventuAgro260210-02" {
		t.Errorf("expected InventuAgro260210-02, got %s", num)
	}

	// Gaps do not matter, only the maximum suffix does.
	existing = []string{"InventuAgro260210-01", "InventuAgro260210-07"}
	num = Next(existing, date)
	if num != "InventuAgro260210-08" {
		t.Errorf("expected InventuAgro260210-08, got %s", num)
	}
}

func TestNext_NewDayStartsOwnSequence(t *testing.T) {
	existing := []string{
		"InventuAgro260210-01",
		"InventuAgro260210-02",
		"InventuAgro260210-03",
	}

	nextDay := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	num := Next(existing, nextDay)
	if num != "InventuAgro260211-01" {
		t.Errorf("expected InventuAgro260211-01, got %s", num)
	}
}

func TestNext_Deterministic(t *testing.T) {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	existing := []string{"InventuAgro260210-04", "InventuAgro260209-09"}

	first := Next(existing, date)
	second := Next(existing, date)
	if first != second {
		t.Errorf("expected identical results, got %s and %s", first, second)
	}
}

func TestParseDate(t *testing.T) {
	date, ok := ParseDate("InventuAgro260210-01")
	if !ok {
		t.Fatal("expected well-formed number to parse")
	}
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("expected %v, got %v", want, date)
	}
}

func TestParseDate_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"InventuAgro-01",
		"InventuAgro2602-01",
		"OtherPrefix260210-01",
		"InventuAgro260210",
		"InventuAgro260210-1",
	}
	for _, s := range malformed {
		if _, ok := ParseDate(s); ok {
			t.Errorf("expected %q to fail parsing", s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		parsed, ok := ParseDate(Next(nil, d))
		if !ok {
			t.Fatalf("round trip failed for %v", d)
		}
		y, m, day := d.Date()
		py, pm, pd := parsed.Date()
		if y != py || m != pm || day != pd {
			t.Errorf("expected calendar day %v, got %v", d, parsed)
		}
	}
}

// mockSource returns a fixed snapshot regardless of prefix.
type mockSource struct {
	numbers []string
	err     error
}

func (m *mockSource) NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	return m.numbers, m.err
}

func TestServiceGenerate(t *testing.T) {
	svc := New(&mockSource{numbers: []string{"InventuAgro260210-02"}})

	num, err := svc.Generate(context.Background(), time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "InventuAgro260210-03" {
		t.Errorf("expected InventuAgro260210-03, got %s", num)
	}
}
