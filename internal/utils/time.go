package utils

import (
	"strings"
	"time"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseOptionalDate parses a YYYY-MM-DD query value. Empty input yields the
// zero Date; anything else malformed is a validation error on field.
func ParseOptionalDate(field, raw string) (models.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, domain.ValidationError{Field: field, Msg: "expected YYYY-MM-DD", Err: err}
	}
	return d, nil
}

// MonthPeriod formats a month as "2025-11".
func MonthPeriod(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
