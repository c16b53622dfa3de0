package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

const (
	dateLayout   = "2006-01-02"
	defaultLimit = 20
)

func parseDay(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
