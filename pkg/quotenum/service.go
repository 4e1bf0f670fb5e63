package quotenum

import (
	"context"
	"fmt"
	"time"
)

// NumberSource lists existing quotation numbers sharing a date prefix.
// The postgres document repository implements this; tests use a mock.
type NumberSource interface {
	NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// Service generates quotation numbers against a number source.
// It reads the current snapshot on every call; the race between two
// concurrent snapshots is resolved by the storage layer's uniqueness
// constraint, with a retry driven by the quotation service.
type Service struct {
	source NumberSource
}

// New creates a numbering service.
func New(source NumberSource) *Service {
	return &Service{source: source}
}

// Generate returns the next quotation number for the given date.
func (s *Service) Generate(ctx context.Context, date time.Time) (string, error) {
	if s == nil || s.source == nil {
		return "", fmt.Errorf("quotenum service is not initialized")
	}

	existing, err := s.source.NumbersWithPrefix(ctx, DatePrefix(date))
	if err != nil {
		return "", fmt.Errorf("list existing numbers: %w", err)
	}

	return Next(existing, date), nil
}
