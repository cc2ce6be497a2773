package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
)

// SnapshotService records one balance row per account per day. The cron
// runner fires it nightly; re-runs on the same day upsert in place, so
// the job is safe to trigger manually as well.
type SnapshotService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *SnapshotService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *SnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	accounts, err := s.Repo.ListAccounts(ctx)
	if err != nil {
		return err
	}
	day := s.now().UTC().Truncate(24 * time.Hour)

	for i := range accounts {
		account := &accounts[i]
		trades, err := s.Repo.ListAllTradesByAccount(ctx, account.ID)
		if err != nil {
			return err
		}
		summary := stats.ComputeStats(trades, account)
		snap := &models.BalanceSnapshot{
			AccountID:  account.ID,
			SnapshotAt: day,
			Balance:    account.StartingBalance.Add(summary.TotalPnL),
			TotalPnL:   summary.TotalPnL,
			TradeCount: summary.TotalTrades,
		}
		if err := s.Repo.UpsertBalanceSnapshot(ctx, snap); err != nil {
			return err
		}
		if s.Logger != nil {
			s.Logger.Info("balance snapshot written",
				zap.String("account_id", account.ID),
				zap.Time("day", day),
				zap.String("balance", snap.Balance.String()),
			)
		}
	}
	return nil
}
