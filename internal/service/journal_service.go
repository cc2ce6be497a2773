package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
	"tradejournal/internal/stream"
)

// JournalService owns trade writes: normalization at the data-model
// boundary, persistence, the account balance refresh, and the change
// broadcast to dashboard clients.
type JournalService struct {
	Repo   repository.Repository
	Hub    *stream.Hub
	Logger *zap.Logger
}

func (s *JournalService) CreateTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	if s == nil || s.Repo == nil || trade == nil {
		return nil, nil
	}

	trade.Session = strings.TrimSpace(trade.Session)
	if trade.Session == "" {
		return nil, fmt.Errorf("session is required")
	}

	if strings.TrimSpace(trade.AccountID) == "" {
		account, err := s.Repo.GetActiveAccount(ctx)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, fmt.Errorf("no active account")
		}
		trade.AccountID = account.ID
	}

	if strings.TrimSpace(trade.ID) == "" {
		trade.ID = uuid.NewString()
	}
	if trade.Date.IsZero() {
		trade.Date = time.Now().UTC()
	}
	// Normalize once here; everything downstream compares enum values.
	trade.Result = models.ParseTradeResult(trade.Result).String()

	if err := s.Repo.InsertTrade(ctx, trade); err != nil {
		return nil, err
	}
	if err := s.refreshAccountBalance(ctx, trade.AccountID); err != nil && s.Logger != nil {
		s.Logger.Warn("balance refresh failed", zap.String("account_id", trade.AccountID), zap.Error(err))
	}
	s.Hub.Publish(stream.Event{Kind: stream.EventTradeCreated, TradeID: trade.ID, AccountID: trade.AccountID})
	return trade, nil
}

// TradePatch carries the updatable trade fields; nil means untouched.
type TradePatch struct {
	Date           *time.Time
	Symbol         *string
	Side           *string
	Session        *string
	RiskPercentage *decimal.Decimal
	RR             *decimal.Decimal
	Result         *string
	PnLDollar      *decimal.Decimal
	Notes          *string
	ImageURL       *string
	StrategyTag    *string
}

func (p TradePatch) updates() map[string]any {
	out := map[string]any{}
	if p.Date != nil {
		out["date"] = p.Date.UTC()
	}
	if p.Symbol != nil {
		out["symbol"] = strings.TrimSpace(*p.Symbol)
	}
	if p.Side != nil {
		out["side"] = strings.TrimSpace(*p.Side)
	}
	if p.Session != nil {
		out["session"] = strings.TrimSpace(*p.Session)
	}
	if p.RiskPercentage != nil {
		out["risk_percentage"] = *p.RiskPercentage
	}
	if p.RR != nil {
		out["rr"] = *p.RR
	}
	if p.Result != nil {
		out["result"] = models.ParseTradeResult(*p.Result).String()
	}
	if p.PnLDollar != nil {
		out["pnl_dollar"] = *p.PnLDollar
	}
	if p.Notes != nil {
		out["notes"] = *p.Notes
	}
	if p.ImageURL != nil {
		out["image_url"] = strings.TrimSpace(*p.ImageURL)
	}
	if p.StrategyTag != nil {
		out["strategy_tag"] = strings.TrimSpace(*p.StrategyTag)
	}
	return out
}

func (s *JournalService) UpdateTrade(ctx context.Context, id string, patch TradePatch) (*models.Trade, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	existing, err := s.Repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if patch.Session != nil && strings.TrimSpace(*patch.Session) == "" {
		return nil, fmt.Errorf("session is required")
	}

	updates := patch.updates()
	if len(updates) > 0 {
		if err := s.Repo.UpdateTrade(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.refreshAccountBalance(ctx, existing.AccountID); err != nil && s.Logger != nil {
		s.Logger.Warn("balance refresh failed", zap.String("account_id", existing.AccountID), zap.Error(err))
	}
	s.Hub.Publish(stream.Event{Kind: stream.EventTradeUpdated, TradeID: id, AccountID: existing.AccountID})
	return updated, nil
}

func (s *JournalService) DeleteTrade(ctx context.Context, id string) (bool, error) {
	if s == nil || s.Repo == nil {
		return false, nil
	}
	existing, err := s.Repo.GetTradeByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := s.Repo.DeleteTrade(ctx, id); err != nil {
		return false, err
	}
	if err := s.refreshAccountBalance(ctx, existing.AccountID); err != nil && s.Logger != nil {
		s.Logger.Warn("balance refresh failed", zap.String("account_id", existing.AccountID), zap.Error(err))
	}
	s.Hub.Publish(stream.Event{Kind: stream.EventTradeDeleted, TradeID: id, AccountID: existing.AccountID})
	return true, nil
}

// refreshAccountBalance recomputes current_balance as starting balance
// plus the total PnL over every trade of the account.
func (s *JournalService) refreshAccountBalance(ctx context.Context, accountID string) error {
	account, err := s.Repo.GetAccountByID(ctx, accountID)
	if err != nil || account == nil {
		return err
	}
	trades, err := s.Repo.ListAllTradesByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	summary := stats.ComputeStats(trades, account)
	current := account.StartingBalance.Add(summary.TotalPnL)
	return s.Repo.UpdateAccount(ctx, accountID, map[string]any{
		"current_balance": current,
	})
}
