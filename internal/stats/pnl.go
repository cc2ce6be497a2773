// Package stats holds the journal's calculation core: per-trade PnL,
// aggregate summaries, time-range filtering, and the equity curve. Every
// function is a pure fold over (trades, account) with no I/O, so the
// package is safe to call concurrently from request handlers.
package stats

import (
	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

var hundred = decimal.NewFromInt(100)

// defaultRisk and defaultRR back-fill absent or non-positive inputs;
// a trade with no risk figure is treated as 1% at 1R.
var (
	defaultRisk = decimal.NewFromInt(1)
	defaultRR   = decimal.NewFromInt(1)
)

// CalculatePnL returns the signed dollar outcome of a single trade.
//
// A stored pnl_dollar is authoritative and returned verbatim, bypassing
// all derived math. Otherwise the outcome is derived from the account's
// starting balance, the risk percentage, and the reward-to-risk ratio,
// rounded to cents. A nil account means there is nothing to scale risk
// against and yields zero.
func CalculatePnL(trade *models.Trade, account *models.Account) decimal.Decimal {
	if trade == nil || account == nil {
		return decimal.Zero
	}
	if trade.PnLDollar != nil {
		return *trade.PnLDollar
	}

	riskPct := defaultRisk
	if trade.RiskPercentage != nil && trade.RiskPercentage.IsPositive() {
		riskPct = *trade.RiskPercentage
	}
	rr := defaultRR
	if trade.RR != nil && trade.RR.IsPositive() {
		rr = *trade.RR
	}

	riskAmount := account.StartingBalance.Mul(riskPct).Div(hundred)

	switch trade.Outcome() {
	case models.ResultWin:
		return riskAmount.Mul(rr).Round(2)
	case models.ResultLoss:
		return riskAmount.Neg().Round(2)
	default:
		return decimal.Zero
	}
}
