package matching

import (
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func str(s string) *string { return &s }

func gender(g domain.Gender) *domain.Gender { return &g }
