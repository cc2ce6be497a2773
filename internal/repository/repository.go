package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tradejournal/internal/models"
)

// Repository is the persistence boundary for the journal. Handlers and
// services depend on this interface; the gorm implementation lives in
// repository/gorm.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Trades
	InsertTrade(ctx context.Context, item *models.Trade) error
	GetTradeByID(ctx context.Context, id string) (*models.Trade, error)
	UpdateTrade(ctx context.Context, id string, updates map[string]any) error
	DeleteTrade(ctx context.Context, id string) error
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	// ListAllTradesByAccount returns every trade of one account ordered
	// most-recent-first (updated_at desc, created_at desc, date desc).
	// The stats engine's streak scan depends on this exact order.
	ListAllTradesByAccount(ctx context.Context, accountID string) ([]models.Trade, error)

	// Accounts
	InsertAccount(ctx context.Context, item *models.Account) error
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetActiveAccount(ctx context.Context) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id string, updates map[string]any) error
	SetActiveAccount(ctx context.Context, id string) error
	DeleteAccount(ctx context.Context, id string) error

	// Balance snapshots
	UpsertBalanceSnapshot(ctx context.Context, item *models.BalanceSnapshot) error
	ListBalanceSnapshots(ctx context.Context, params ListBalanceSnapshotsParams) ([]models.BalanceSnapshot, error)
}

type ListTradesParams struct {
	Limit       int
	Offset      int
	AccountID   *string
	Session     *string
	Result      *string
	Symbol      *string
	StrategyTag *string
	Since       *time.Time
	Until       *time.Time
	OrderBy     string
	Asc         *bool
}

type ListBalanceSnapshotsParams struct {
	Limit     int
	Offset    int
	AccountID *string
	Since     *time.Time
	Until     *time.Time
}
