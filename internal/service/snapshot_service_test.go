package service

import (
	"context"
	"testing"
	"time"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

func TestSnapshotRunOnceWritesOneRowPerAccount(t *testing.T) {
	repo := newStubRepo()
	seedAccount(t, repo, "a1", "10000", true)
	seedAccount(t, repo, "a2", "5000", false)

	pnl := dec(t, "300")
	err := repo.InsertTrade(context.Background(), &models.Trade{
		ID:        "t1",
		AccountID: "a1",
		Session:   "NY",
		Date:      time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
		Result:    "win",
		PnLDollar: &pnl,
	})
	if err != nil {
		t.Fatalf("insert trade: %v", err)
	}

	now := time.Date(2024, 3, 15, 23, 50, 0, 0, time.UTC)
	svc := &SnapshotService{Repo: repo, Now: func() time.Time { return now }}
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	snaps, err := repo.ListBalanceSnapshots(context.Background(), repository.ListBalanceSnapshotsParams{})
	if err != nil {
		t.Fatalf("ListBalanceSnapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected one snapshot per account, got %d", len(snaps))
	}

	byAccount := map[string]models.BalanceSnapshot{}
	for _, s := range snaps {
		byAccount[s.AccountID] = s
	}
	a1 := byAccount["a1"]
	if want := dec(t, "10300"); !a1.Balance.Equal(want) {
		t.Fatalf("a1 balance = %s, want %s", a1.Balance, want)
	}
	if a1.TradeCount != 1 || !a1.TotalPnL.Equal(pnl) {
		t.Fatalf("a1 snapshot = %+v", a1)
	}
	if want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC); !a1.SnapshotAt.Equal(want) {
		t.Fatalf("a1 day = %s, want %s", a1.SnapshotAt, want)
	}
	a2 := byAccount["a2"]
	if want := dec(t, "5000"); !a2.Balance.Equal(want) {
		t.Fatalf("a2 balance = %s, want %s", a2.Balance, want)
	}
}

func TestSnapshotRunOnceIdempotentPerDay(t *testing.T) {
	repo := newStubRepo()
	seedAccount(t, repo, "a1", "10000", true)

	now := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	svc := &SnapshotService{Repo: repo, Now: func() time.Time { return now }}
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("first RunOnce: %v", err)
	}
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("second RunOnce: %v", err)
	}

	snaps, _ := repo.ListBalanceSnapshots(context.Background(), repository.ListBalanceSnapshotsParams{})
	if len(snaps) != 1 {
		t.Fatalf("expected single upserted row, got %d", len(snaps))
	}
}
