package service

import (
	"context"
	"time"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
)

// DashboardService assembles everything the dashboard renders. It is a
// thin orchestration over the pure stats core: load the active account
// and its trades, filter, fold.
type DashboardService struct {
	Repo repository.Repository
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

type Overview struct {
	Account *models.Account `json:"account"`
	Range   stats.Range     `json:"range"`
	Summary stats.Summary   `json:"summary"`
}

func (s *DashboardService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Stats returns the aggregate summary for the active account over the
// requested time range. With no active account the summary is all
// zeroes rather than an error; an empty journal is a valid dashboard.
func (s *DashboardService) Stats(ctx context.Context, rangeKeyword string) (Overview, error) {
	out := Overview{Range: stats.ParseRange(rangeKeyword)}
	if s == nil || s.Repo == nil {
		return out, nil
	}
	account, err := s.Repo.GetActiveAccount(ctx)
	if err != nil {
		return out, err
	}
	out.Account = account
	if account == nil {
		out.Summary = stats.ComputeStats(nil, nil)
		return out, nil
	}

	trades, err := s.Repo.ListAllTradesByAccount(ctx, account.ID)
	if err != nil {
		return out, err
	}
	filtered := stats.FilterByRange(trades, rangeKeyword, s.now())
	out.Summary = stats.ComputeStats(filtered, account)
	return out, nil
}

// EquityCurve builds the cumulative PnL curve over the whole journal of
// the active account, never the filtered subset.
func (s *DashboardService) EquityCurve(ctx context.Context) ([]stats.EquityPoint, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.Repo.GetActiveAccount(ctx)
	if err != nil || account == nil {
		return nil, err
	}
	trades, err := s.Repo.ListAllTradesByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return stats.BuildEquityCurve(trades, account), nil
}

// Snapshots serves the stored balance history for the active account.
func (s *DashboardService) Snapshots(ctx context.Context, params repository.ListBalanceSnapshotsParams) ([]models.BalanceSnapshot, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	if params.AccountID == nil {
		account, err := s.Repo.GetActiveAccount(ctx)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, nil
		}
		params.AccountID = &account.ID
	}
	return s.Repo.ListBalanceSnapshots(ctx, params)
}
