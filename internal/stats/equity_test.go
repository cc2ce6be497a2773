package stats

import (
	"reflect"
	"testing"
	"time"

	"tradejournal/internal/models"
)

func TestBuildEquityCurve_SeedAndRunningSum(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		// Intentionally out of order; the builder sorts ascending by date.
		{Result: "loss", PnLDollar: decPtr(t, "-50"), Date: day(t, "2024-03-12")},
		{Result: "win", PnLDollar: decPtr(t, "100"), Date: day(t, "2024-03-11")},
	}
	points := BuildEquityCurve(trades, account)
	if len(points) != 3 {
		t.Fatalf("points=%d want=3", len(points))
	}
	if !points[0].Value.IsZero() || !points[0].Date.Equal(day(t, "2024-03-11")) {
		t.Fatalf("seed point=%+v", points[0])
	}
	if !points[1].Value.Equal(dec(t, "100")) {
		t.Fatalf("point[1]=%s want=100", points[1].Value.String())
	}
	if !points[2].Value.Equal(dec(t, "50")) {
		t.Fatalf("point[2]=%s want=50", points[2].Value.String())
	}
}

func TestBuildEquityCurve_Empty(t *testing.T) {
	if points := BuildEquityCurve(nil, acct(t, "10000")); points != nil {
		t.Fatalf("points=%v want nil", points)
	}
}

func TestBuildEquityCurve_SkipsZeroDates(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "win", PnLDollar: decPtr(t, "10")}, // zero date, excluded
		{Result: "win", PnLDollar: decPtr(t, "25"), Date: day(t, "2024-03-11")},
	}
	points := BuildEquityCurve(trades, account)
	if len(points) != 2 {
		t.Fatalf("points=%d want=2", len(points))
	}
	if !points[1].Value.Equal(dec(t, "25")) {
		t.Fatalf("point[1]=%s want=25", points[1].Value.String())
	}
}

func TestBuildEquityCurve_StableTieBreakOnSameDay(t *testing.T) {
	account := acct(t, "10000")
	d := day(t, "2024-03-11")
	trades := []models.Trade{
		{Result: "win", PnLDollar: decPtr(t, "10"), Date: d, CreatedAt: d.Add(2 * time.Hour)},
		{Result: "win", PnLDollar: decPtr(t, "20"), Date: d, CreatedAt: d.Add(1 * time.Hour)},
	}
	points := BuildEquityCurve(trades, account)
	if len(points) != 3 {
		t.Fatalf("points=%d want=3", len(points))
	}
	// Earlier created_at first: 20 then 10.
	if !points[1].Value.Equal(dec(t, "20")) || !points[2].Value.Equal(dec(t, "30")) {
		t.Fatalf("points=%s,%s want=20,30", points[1].Value.String(), points[2].Value.String())
	}
}

func TestBuildEquityCurve_IdempotentAndNonMutating(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "loss", Date: day(t, "2024-03-13")},
		{Result: "win", RR: decPtr(t, "2"), Date: day(t, "2024-03-11")},
		{Result: "breakeven", Date: day(t, "2024-03-12")},
	}
	snapshot := make([]models.Trade, len(trades))
	copy(snapshot, trades)

	first := BuildEquityCurve(trades, account)
	second := BuildEquityCurve(trades, account)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("curve not idempotent:\nfirst=%+v\nsecond=%+v", first, second)
	}
	if !reflect.DeepEqual(trades, snapshot) {
		t.Fatalf("input mutated")
	}
}
