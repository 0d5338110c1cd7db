package repositories

import (
	"errors"
	"time"
)

var errRollback = errors.New("rollback")

func strPtr(s string) *string {
	return &s
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
