package stats

import (
	"testing"
	"time"

	"tradejournal/internal/models"
)

func datesOf(trades []models.Trade) []string {
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		out = append(out, t.Date.Format("2006-01-02"))
	}
	return out
}

func tradesOn(t *testing.T, days ...string) []models.Trade {
	t.Helper()
	out := make([]models.Trade, 0, len(days))
	for _, d := range days {
		out = append(out, models.Trade{Result: "win", Date: day(t, d)})
	}
	return out
}

func TestFilterByRange_UnknownKeywordIsAll(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t, "2020-01-01", "2024-03-15", "2030-12-31")
	for _, kw := range []string{"all", "", "last-5-minutes", "ALL"} {
		got := FilterByRange(trades, kw, now)
		if len(got) != len(trades) {
			t.Fatalf("keyword=%q kept %d of %d", kw, len(got), len(trades))
		}
	}
}

func TestFilterByRange_Today_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	trades := []models.Trade{
		{Result: "win", Date: time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)},
		{Result: "win", Date: time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)},
	}
	got := FilterByRange(trades, "today", now)
	if len(got) != 1 || got[0].Date.Day() != 15 {
		t.Fatalf("today kept %v", datesOf(got))
	}
	got = FilterByRange(trades, "yesterday", now)
	if len(got) != 1 || got[0].Date.Day() != 14 {
		t.Fatalf("yesterday kept %v", datesOf(got))
	}
}

func TestFilterByRange_ThisWeek_SundayStart(t *testing.T) {
	// 2024-03-15 is a Friday; the week runs Sunday 03-10 through Saturday 03-16.
	now := day(t, "2024-03-15")
	trades := tradesOn(t,
		"2024-03-11", // Monday, same week -> in
		"2024-03-10", // Sunday, week start -> in
		"2024-03-09", // prior Saturday -> out
		"2024-03-16", // Saturday, same week -> in
		"2024-03-17", // next Sunday -> out
	)
	got := FilterByRange(trades, "this-week", now)
	want := []string{"2024-03-11", "2024-03-10", "2024-03-16"}
	if len(got) != len(want) {
		t.Fatalf("this-week kept %v want %v", datesOf(got), want)
	}
	for i, d := range want {
		if got[i].Date.Format("2006-01-02") != d {
			t.Fatalf("this-week kept %v want %v", datesOf(got), want)
		}
	}
}

func TestFilterByRange_LastWeek(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t,
		"2024-03-09", // prior Saturday -> in
		"2024-03-03", // prior Sunday -> in
		"2024-03-02", // two weeks back -> out
		"2024-03-10", // this week -> out
	)
	got := FilterByRange(trades, "last-week", now)
	if len(got) != 2 {
		t.Fatalf("last-week kept %v", datesOf(got))
	}
}

func TestFilterByRange_MonthContainment(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t, "2024-03-01", "2024-03-31", "2024-02-29", "2024-04-01")

	got := FilterByRange(trades, "this-month", now)
	if len(got) != 2 {
		t.Fatalf("this-month kept %v", datesOf(got))
	}
	got = FilterByRange(trades, "last-month", now)
	if len(got) != 1 || got[0].Date.Month() != time.February {
		t.Fatalf("last-month kept %v", datesOf(got))
	}
}

func TestFilterByRange_LastMonthAcrossYearBoundary(t *testing.T) {
	now := day(t, "2024-01-10")
	trades := tradesOn(t, "2023-12-31", "2023-12-01", "2023-11-30", "2024-01-05")
	got := FilterByRange(trades, "last-month", now)
	if len(got) != 2 {
		t.Fatalf("last-month kept %v", datesOf(got))
	}
}

func TestFilterByRange_ThreeMonthsRollingOpenEnded(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t,
		"2023-12-15", // exactly the cutoff -> in
		"2023-12-14", // just outside -> out
		"2024-03-16", // future-dated -> in (window is open upward)
		"2025-01-01", // far future -> in
	)
	got := FilterByRange(trades, "3-months", now)
	if len(got) != 3 {
		t.Fatalf("3-months kept %v", datesOf(got))
	}
}

func TestFilterByRange_Years(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t, "2024-01-01", "2024-12-31", "2023-06-15", "2022-12-31")

	if got := FilterByRange(trades, "this-year", now); len(got) != 2 {
		t.Fatalf("this-year kept %v", datesOf(got))
	}
	if got := FilterByRange(trades, "last-year", now); len(got) != 1 {
		t.Fatalf("last-year kept %v", datesOf(got))
	}
}

func TestFilterByRange_ZeroDateExcludedFromDatedWindows(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := []models.Trade{
		{Result: "win"}, // zero date
		{Result: "win", Date: day(t, "2024-03-15")},
	}
	if got := FilterByRange(trades, "today", now); len(got) != 1 {
		t.Fatalf("today kept %v", datesOf(got))
	}
	if got := FilterByRange(trades, "all", now); len(got) != 2 {
		t.Fatalf("all kept %d want 2", len(got))
	}
}

func TestFilterByRange_DoesNotMutateInput(t *testing.T) {
	now := day(t, "2024-03-15")
	trades := tradesOn(t, "2024-03-15", "2020-01-01")
	_ = FilterByRange(trades, "today", now)
	if len(trades) != 2 || trades[1].Date.Year() != 2020 {
		t.Fatalf("input mutated: %v", datesOf(trades))
	}
}
