package stats

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"tradejournal/internal/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad day %q: %v", value, err)
	}
	return d
}

func TestComputeStats_Empty(t *testing.T) {
	got := ComputeStats(nil, acct(t, "10000"))
	if got.TotalTrades != 0 || got.Wins != 0 || got.Losses != 0 || got.Breakevens != 0 {
		t.Fatalf("counts not zeroed: %+v", got)
	}
	if got.WinRate != 0 || got.ProfitFactor != 0 || got.AvgWinRR != 0 || got.AvgLossRR != 0 {
		t.Fatalf("ratios not zeroed: %+v", got)
	}
	if !got.TotalPnL.IsZero() || !got.BestDayProfit.IsZero() {
		t.Fatalf("money not zeroed: %+v", got)
	}
}

func TestComputeStats_NilAccount(t *testing.T) {
	trades := []models.Trade{{Result: "win", RR: decPtr(t, "2")}}
	got := ComputeStats(trades, nil)
	if got.TotalTrades != 0 || !got.TotalPnL.IsZero() {
		t.Fatalf("nil account must zero the summary, got %+v", got)
	}
}

func TestComputeStats_ExampleScenario(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "Win", RR: decPtr(t, "2"), RiskPercentage: decPtr(t, "1"), Date: day(t, "2024-03-11")},
		{Result: "Loss", RiskPercentage: decPtr(t, "1"), Date: day(t, "2024-03-12")},
	}
	got := ComputeStats(trades, account)

	if got.TotalTrades != 2 || got.Wins != 1 || got.Losses != 1 {
		t.Fatalf("counts=%+v", got)
	}
	if !got.TotalPnL.Equal(dec(t, "100")) {
		t.Fatalf("total_pnl=%s want=100", got.TotalPnL.String())
	}
	if got.WinRate != 50 {
		t.Fatalf("win_rate=%v want=50", got.WinRate)
	}
	if got.ProfitFactor != 2 {
		t.Fatalf("profit_factor=%v want=2", got.ProfitFactor)
	}
	if got.AvgWinRR != 2 || got.AvgLossRR != 1 {
		t.Fatalf("avg rr win=%v loss=%v want 2/1", got.AvgWinRR, got.AvgLossRR)
	}
}

func TestComputeStats_SinglePnLPerTrade(t *testing.T) {
	// Authoritative pnl_dollar must drive every aggregate, even when the
	// result label disagrees with its sign.
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "Win", RR: decPtr(t, "5"), PnLDollar: decPtr(t, "-37.5"), Date: day(t, "2024-01-02")},
		{Result: "Loss", PnLDollar: decPtr(t, "12.25"), Date: day(t, "2024-01-03")},
	}
	got := ComputeStats(trades, account)
	if !got.TotalPnL.Equal(dec(t, "-25.25")) {
		t.Fatalf("total_pnl=%s want=-25.25", got.TotalPnL.String())
	}
	// Gross win/loss buckets follow the result partition with abs values.
	if math.Abs(got.ProfitFactor-37.5/12.25) > 1e-9 {
		t.Fatalf("profit_factor=%v want=%v", got.ProfitFactor, 37.5/12.25)
	}
}

func TestComputeStats_ProfitFactorInfinity(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "win", RR: decPtr(t, "2"), Date: day(t, "2024-02-01")},
		{Result: "win", RR: decPtr(t, "1"), Date: day(t, "2024-02-02")},
	}
	got := ComputeStats(trades, account)
	if !math.IsInf(got.ProfitFactor, 1) {
		t.Fatalf("profit_factor=%v want=+Inf", got.ProfitFactor)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"profit_factor":"∞"`) {
		t.Fatalf("json=%s want profit_factor rendered as ∞", raw)
	}
}

func TestComputeStats_AllBreakevenProfitFactorZero(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "breakeven", Date: day(t, "2024-02-01")},
		{Result: "Breakeven", Date: day(t, "2024-02-02")},
	}
	got := ComputeStats(trades, account)
	if got.ProfitFactor != 0 {
		t.Fatalf("profit_factor=%v want=0", got.ProfitFactor)
	}
	if got.Breakevens != 2 || got.Wins != 0 || got.Losses != 0 {
		t.Fatalf("partition=%+v", got)
	}
}

func TestComputeStats_StreakScan(t *testing.T) {
	account := acct(t, "10000")
	// Most-recent-first: two wins, then a loss, then older history.
	trades := []models.Trade{
		{Result: "win", Date: day(t, "2024-03-15")},
		{Result: "win", Date: day(t, "2024-03-14")},
		{Result: "loss", Date: day(t, "2024-03-13")},
		{Result: "win", Date: day(t, "2024-03-12")},
	}
	got := ComputeStats(trades, account)
	// Literal forward scan: the counters end on the last trade seen.
	if got.CurrentWinStreak != 1 || got.CurrentLossStreak != 0 {
		t.Fatalf("streaks win=%d loss=%d want 1/0", got.CurrentWinStreak, got.CurrentLossStreak)
	}

	trades = []models.Trade{
		{Result: "win", Date: day(t, "2024-03-15")},
		{Result: "loss", Date: day(t, "2024-03-14")},
		{Result: "loss", Date: day(t, "2024-03-13")},
	}
	got = ComputeStats(trades, account)
	if got.CurrentWinStreak != 0 || got.CurrentLossStreak != 2 {
		t.Fatalf("streaks win=%d loss=%d want 0/2", got.CurrentWinStreak, got.CurrentLossStreak)
	}
}

func TestComputeStats_BreakevenResetsStreaks(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "win", Date: day(t, "2024-03-15")},
		{Result: "win", Date: day(t, "2024-03-14")},
		{Result: "breakeven", Date: day(t, "2024-03-13")},
	}
	got := ComputeStats(trades, account)
	if got.CurrentWinStreak != 0 || got.CurrentLossStreak != 0 {
		t.Fatalf("streaks win=%d loss=%d want 0/0", got.CurrentWinStreak, got.CurrentLossStreak)
	}
}

func TestComputeStats_BestDayProfit(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		// 2024-03-11: +200 -100 = +100
		{Result: "win", RR: decPtr(t, "2"), Date: day(t, "2024-03-11")},
		{Result: "loss", Date: day(t, "2024-03-11")},
		// 2024-03-12: +300
		{Result: "win", RR: decPtr(t, "3"), Date: day(t, "2024-03-12")},
		// undated trade is excluded from day buckets but not from totals
		{Result: "loss"},
	}
	got := ComputeStats(trades, account)
	if !got.BestDayProfit.Equal(dec(t, "300")) {
		t.Fatalf("best_day=%s want=300", got.BestDayProfit.String())
	}
	if !got.TotalPnL.Equal(dec(t, "300")) {
		t.Fatalf("total_pnl=%s want=300", got.TotalPnL.String())
	}
}

func TestComputeStats_AvgWinRRSkipsZeroRatio(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "win", RR: decPtr(t, "3"), Date: day(t, "2024-03-11")},
		{Result: "win", Date: day(t, "2024-03-12")},                    // absent rr counts as 1
		{Result: "win", RR: decPtr(t, "0"), Date: day(t, "2024-03-13")}, // non-positive rr excluded
	}
	got := ComputeStats(trades, account)
	if got.AvgWinRR != 2 {
		t.Fatalf("avg_win_rr=%v want=2", got.AvgWinRR)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	account := acct(t, "10000")
	trades := []models.Trade{
		{Result: "win", RR: decPtr(t, "2"), Date: day(t, "2024-03-11")},
		{Result: "loss", Date: day(t, "2024-03-12")},
		{Result: "breakeven", Date: day(t, "2024-03-13")},
		{Result: "win", PnLDollar: decPtr(t, "55.5"), Date: day(t, "2024-03-14")},
	}
	first := ComputeStats(trades, account)
	for i := 0; i < 10; i++ {
		again := ComputeStats(trades, account)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d diverged:\nfirst=%+v\nagain=%+v", i, first, again)
		}
	}
}
