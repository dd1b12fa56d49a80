package services

import (
	"fmt"
	"math"
	"time"
)

var mesesCortos = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

var mesesLargos = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DaysUntil returns the number of days from now until t, rounded up.
// Negative values mean the date already passed. The result depends on
// wall-clock now at call time and is never stored.
func DaysUntil(t time.Time) int {
	return daysBetween(time.Now(), t)
}

func daysBetween(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// IsUrgent reports whether t falls within the next 3 days (inclusive)
func IsUrgent(t time.Time) bool {
	d := DaysUntil(t)
	return d >= 0 && d <= 3
}

// IsUpcoming reports whether t falls between 3 and 7 days from now
func IsUpcoming(t time.Time) bool {
	d := DaysUntil(t)
	return d > 3 && d <= 7
}

// IsPast reports whether t is before now
func IsPast(t time.Time) bool {
	return t.Before(time.Now())
}

// MonthShortName returns the Spanish short month name for t
func MonthShortName(t time.Time) string {
	return mesesCortos[int(t.Month())-1]
}

// FormatDate renders t in Spanish long form, e.g. "27 de enero de 2026"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesLargos[int(t.Month())-1], t.Year())
}

// RelativeTime renders the distance between now and t in Spanish
func RelativeTime(t time.Time) string {
	days := DaysUntil(t)
	if days < 0 {
		abs := -days
		switch {
		case abs == 1:
			return "Ayer"
		case abs < 7:
			return fmt.Sprintf("Hace %d días", abs)
		case abs < 30:
			return fmt.Sprintf("Hace %d semanas", abs/7)
		default:
			return fmt.Sprintf("Hace %d meses", abs/30)
		}
	}

	switch {
	case days == 0:
		return "Hoy"
	case days == 1:
		return "Mañana"
	case days < 7:
		return fmt.Sprintf("En %d días", days)
	case days < 30:
		return fmt.Sprintf("En %d semanas", days/7)
	default:
		return fmt.Sprintf("En %d meses", days/30)
	}
}
