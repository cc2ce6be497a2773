package stats

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// Summary is the aggregate view the dashboard renders. Money fields are
// decimals; ratios are float64 so a no-loss profit factor can carry IEEE
// +Inf, which the JSON encoding renders as "∞".
type Summary struct {
	TotalTrades int `json:"total_trades"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Breakevens  int `json:"breakevens"`

	WinRate      float64 `json:"win_rate"`
	AvgWinRR     float64 `json:"avg_win_rr"`
	AvgLossRR    float64 `json:"avg_loss_rr"`
	ProfitFactor float64 `json:"profit_factor"`

	CurrentWinStreak  int `json:"current_win_streak"`
	CurrentLossStreak int `json:"current_loss_streak"`

	TotalPnL      decimal.Decimal `json:"total_pnl"`
	BestDayProfit decimal.Decimal `json:"best_day_profit"`
}

// MarshalJSON renders an infinite profit factor as the string "∞";
// encoding/json rejects IEEE infinities outright.
func (s Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	var pf any = s.ProfitFactor
	if math.IsInf(s.ProfitFactor, 1) {
		pf = "∞"
	}
	return json.Marshal(struct {
		alias
		ProfitFactor any `json:"profit_factor"`
	}{alias(s), pf})
}

const dayKeyLayout = "2006-01-02"

// ComputeStats folds the given trades into a Summary. The PnL of each
// trade is computed exactly once and reused for every figure, so two
// stats can never disagree about one trade's outcome.
//
// Streak counters use a literal forward scan over the input order:
// callers wanting the streak ending at the most recent trade must pass
// trades sorted most-recent-first (updated_at desc, created_at desc,
// date desc), which is what the repository's stats path guarantees.
func ComputeStats(trades []models.Trade, account *models.Account) Summary {
	out := Summary{
		TotalPnL:      decimal.Zero,
		BestDayProfit: decimal.Zero,
	}
	if len(trades) == 0 || account == nil {
		return out
	}

	var (
		grossWin  = decimal.Zero
		grossLoss = decimal.Zero
		winRRSum  float64
		winRRN    int
		dayPnL    = map[string]decimal.Decimal{}
	)

	for i := range trades {
		t := &trades[i]
		pnl := CalculatePnL(t, account)
		out.TotalPnL = out.TotalPnL.Add(pnl)

		switch t.Outcome() {
		case models.ResultWin:
			out.Wins++
			grossWin = grossWin.Add(pnl.Abs())
			rr := defaultRR
			if t.RR != nil {
				rr = *t.RR
			}
			if rr.IsPositive() {
				f, _ := rr.Float64()
				winRRSum += f
				winRRN++
			}
			out.CurrentWinStreak++
			out.CurrentLossStreak = 0
		case models.ResultLoss:
			out.Losses++
			grossLoss = grossLoss.Add(pnl.Abs())
			out.CurrentLossStreak++
			out.CurrentWinStreak = 0
		default:
			out.Breakevens++
			out.CurrentWinStreak = 0
			out.CurrentLossStreak = 0
		}

		if !t.Date.IsZero() {
			key := t.Date.Format(dayKeyLayout)
			dayPnL[key] = dayPnL[key].Add(pnl)
		}
	}

	out.TotalTrades = len(trades)
	out.WinRate = float64(out.Wins) / float64(out.TotalTrades) * 100

	if winRRN > 0 {
		out.AvgWinRR = winRRSum / float64(winRRN)
	}
	// A loss is one R by convention, whatever the planned ratio was.
	if out.Losses > 0 {
		out.AvgLossRR = 1
	}

	out.ProfitFactor = profitFactor(grossWin, grossLoss)

	first := true
	for _, sum := range dayPnL {
		if first || sum.GreaterThan(out.BestDayProfit) {
			out.BestDayProfit = sum
			first = false
		}
	}

	return out
}

// profitFactor is the pure dollar-sum ratio of gross wins to gross
// losses. No losing dollars against some winning dollars is infinite
// edge, not a large finite number; neither side traded is zero.
func profitFactor(grossWin, grossLoss decimal.Decimal) float64 {
	if grossLoss.IsZero() {
		if grossWin.IsZero() {
			return 0
		}
		return math.Inf(1)
	}
	f, _ := grossWin.Div(grossLoss).Float64()
	return f
}

// RecencyLess orders trades most-recent-first for the streak scan:
// updated_at desc, then created_at desc, then date desc.
func RecencyLess(a, b *models.Trade) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Date.After(b.Date)
}
