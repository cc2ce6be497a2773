package models

import "testing"

func TestParseTradeResult(t *testing.T) {
	cases := map[string]TradeResult{
		"Win":        ResultWin,
		"WIN":        ResultWin,
		" loss ":     ResultLoss,
		"Breakeven":  ResultBreakeven,
		"break-even": ResultBreakeven,
		"BE":         ResultBreakeven,
		"scratch":    ResultUnknown,
		"":           ResultUnknown,
	}
	for raw, want := range cases {
		if got := ParseTradeResult(raw); got != want {
			t.Fatalf("ParseTradeResult(%q)=%s want=%s", raw, got, want)
		}
	}
}

func TestTradeResultValid(t *testing.T) {
	if !ResultWin.Valid() || !ResultLoss.Valid() || !ResultBreakeven.Valid() {
		t.Fatalf("recorded outcomes must be valid")
	}
	if ResultUnknown.Valid() {
		t.Fatalf("unknown must not be valid")
	}
}
