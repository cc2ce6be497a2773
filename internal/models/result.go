package models

import "strings"

// TradeResult is the closed set of trade outcomes. Raw user input is
// case-insensitive ("Win", "WIN", "win"); normalization happens once at
// the data-model boundary so downstream code compares enum values only.
type TradeResult string

const (
	ResultWin       TradeResult = "win"
	ResultLoss      TradeResult = "loss"
	ResultBreakeven TradeResult = "breakeven"
	ResultUnknown   TradeResult = "unknown"
)

func ParseTradeResult(raw string) TradeResult {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "win":
		return ResultWin
	case "loss":
		return ResultLoss
	case "breakeven", "break-even", "be":
		return ResultBreakeven
	default:
		return ResultUnknown
	}
}

func (r TradeResult) String() string {
	return string(r)
}

// Valid reports whether r is one of the three recorded outcomes.
func (r TradeResult) Valid() bool {
	switch r {
	case ResultWin, ResultLoss, ResultBreakeven:
		return true
	}
	return false
}
