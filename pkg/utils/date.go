package utils

import (
	"time"

	"github.com/pkg/errors"
)

// ParseDate interpreta uma data no formato ISO (YYYY-MM-DD). String vazia
// retorna o zero value, sem erro.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", dateStr)
	}

	return date, nil
}
