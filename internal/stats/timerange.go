package stats

import (
	"strings"
	"time"

	"tradejournal/internal/models"
)

// Range is a dashboard time-range keyword. Unrecognized input behaves
// as RangeAll, so a stale query parameter never empties the dashboard.
type Range string

const (
	RangeAll         Range = "all"
	RangeToday       Range = "today"
	RangeYesterday   Range = "yesterday"
	RangeThisWeek    Range = "this-week"
	RangeLastWeek    Range = "last-week"
	RangeThisMonth   Range = "this-month"
	RangeLastMonth   Range = "last-month"
	RangeThreeMonths Range = "3-months"
	RangeThisYear    Range = "this-year"
	RangeLastYear    Range = "last-year"
)

func ParseRange(raw string) Range {
	switch Range(strings.ToLower(strings.TrimSpace(raw))) {
	case RangeToday, RangeYesterday, RangeThisWeek, RangeLastWeek,
		RangeThisMonth, RangeLastMonth, RangeThreeMonths,
		RangeThisYear, RangeLastYear:
		return Range(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return RangeAll
	}
}

// FilterByRange returns the trades whose Date falls inside the keyword's
// window relative to now. Week and month keywords use calendar
// containment (weeks start on Sunday), not rolling windows; "3-months"
// is a rolling window open-ended upward, so future-dated trades pass.
// Trades with a zero Date are excluded from every dated window.
// Comparisons happen in now's location.
func FilterByRange(trades []models.Trade, keyword string, now time.Time) []models.Trade {
	r := ParseRange(keyword)
	if r == RangeAll {
		out := make([]models.Trade, len(trades))
		copy(out, trades)
		return out
	}

	pred := rangePredicate(r, now)
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Date.IsZero() {
			continue
		}
		if pred(t.Date.In(now.Location())) {
			out = append(out, t)
		}
	}
	return out
}

func rangePredicate(r Range, now time.Time) func(time.Time) bool {
	switch r {
	case RangeToday:
		return func(d time.Time) bool { return sameDay(d, now) }
	case RangeYesterday:
		y := now.AddDate(0, 0, -1)
		return func(d time.Time) bool { return sameDay(d, y) }
	case RangeThisWeek:
		start := startOfWeek(now)
		end := start.AddDate(0, 0, 7)
		return func(d time.Time) bool { return !d.Before(start) && d.Before(end) }
	case RangeLastWeek:
		end := startOfWeek(now)
		start := end.AddDate(0, 0, -7)
		return func(d time.Time) bool { return !d.Before(start) && d.Before(end) }
	case RangeThisMonth:
		return func(d time.Time) bool {
			return d.Year() == now.Year() && d.Month() == now.Month()
		}
	case RangeLastMonth:
		prev := startOfMonth(now).AddDate(0, 0, -1)
		return func(d time.Time) bool {
			return d.Year() == prev.Year() && d.Month() == prev.Month()
		}
	case RangeThreeMonths:
		cutoff := now.AddDate(0, -3, 0)
		return func(d time.Time) bool { return !d.Before(cutoff) }
	case RangeThisYear:
		return func(d time.Time) bool { return d.Year() == now.Year() }
	case RangeLastYear:
		return func(d time.Time) bool { return d.Year() == now.Year()-1 }
	default:
		return func(time.Time) bool { return true }
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the Sunday beginning t's week.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
