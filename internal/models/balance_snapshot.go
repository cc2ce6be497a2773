package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is a nightly equity record per account, written by the
// snapshot cron job and served to the dashboard history view.
type BalanceSnapshot struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_snapshot_account_day" json:"account_id"`
	// SnapshotAt is truncated to the calendar day; one row per account per day.
	SnapshotAt time.Time `gorm:"type:timestamptz;not null;uniqueIndex:idx_snapshot_account_day" json:"snapshot_at"`

	Balance    decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"balance"`
	TotalPnL   decimal.Decimal `gorm:"column:total_pnl;type:numeric(30,10);not null" json:"total_pnl"`
	TradeCount int             `gorm:"not null;default:0" json:"trade_count"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (BalanceSnapshot) TableName() string {
	return "balance_snapshots"
}
