package schedule

import (
	"errors"
	"strings"
	"time"
)

// DateLayout es el formato de fecha civil usado en toda la API.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// ParseDate interpreta s como fecha civil sin zona horaria.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate es el inverso de ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day descarta la hora y lleva la fecha civil de t a medianoche UTC,
// así las comparaciones entre fechas no dependen de la zona.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today devuelve la fecha civil de now en loc (nil = UTC).
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return Day(now)
}

// AddDays suma días de calendario a una fecha civil.
func AddDays(d time.Time, days int) time.Time {
	return Day(d).AddDate(0, 0, days)
}
