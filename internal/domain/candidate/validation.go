package candidate

import (
	"fmt"
	"strings"
)

// ParseDecision normalizes raw decision text to a Decision.
func ParseDecision(raw string) (Decision, error) {
	d := Decision(strings.ToLower(strings.TrimSpace(raw)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDecision, raw)
	}
	return d, nil
}

// ValidateRecord checks a single record's shape.
func ValidateRecord(rec Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		return ErrMissingID
	}
	if !rec.Decision.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDecision, rec.Decision)
	}
	return nil
}

// ValidateRecords checks every record and that ids are unique across the set.
func ValidateRecords(records []Record) error {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if err := ValidateRecord(rec); err != nil {
			return fmt.Errorf("%w: record %d (id %q): %w", ErrInvalidRecord, i, rec.ID, err)
		}
		if first, ok := seen[rec.ID]; ok {
			return fmt.Errorf("%w: record %d: %w: %q first declared at %d", ErrInvalidRecord, i, ErrDuplicateID, rec.ID, first)
		}
		seen[rec.ID] = i
	}
	return nil
}
