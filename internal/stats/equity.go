package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// EquityPoint is one step of the cumulative PnL curve. Value is the
// offset from the account's starting balance, not an absolute balance.
type EquityPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// BuildEquityCurve emits a seed point at the first trade's date with
// value zero, then one point per trade carrying the running PnL sum, in
// ascending date order. The input slice is never mutated; recomputing
// over the same trades and account yields an identical sequence.
// Trades with a zero Date are dropped rather than corrupting the curve.
func BuildEquityCurve(trades []models.Trade, account *models.Account) []EquityPoint {
	dated := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Date.IsZero() {
			continue
		}
		dated = append(dated, t)
	}
	if len(dated) == 0 {
		return nil
	}

	sort.SliceStable(dated, func(i, j int) bool {
		if !dated[i].Date.Equal(dated[j].Date) {
			return dated[i].Date.Before(dated[j].Date)
		}
		return dated[i].CreatedAt.Before(dated[j].CreatedAt)
	})

	points := make([]EquityPoint, 0, len(dated)+1)
	points = append(points, EquityPoint{Date: dated[0].Date, Value: decimal.Zero})

	running := decimal.Zero
	for i := range dated {
		running = running.Add(CalculatePnL(&dated[i], account))
		points = append(points, EquityPoint{Date: dated[i].Date, Value: running})
	}
	return points
}
