package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Trade is a single journaled discretionary trade. Optional numeric
// fields are pointers: absence is meaningful and resolves to documented
// defaults inside the stats package, never to an error.
type Trade struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AccountID string `gorm:"type:varchar(36);not null;index" json:"account_id"`

	// Date is when the trade happened, distinct from record bookkeeping
	// timestamps. Day-bucketed aggregates group on this field.
	Date time.Time `gorm:"type:timestamptz;not null;index" json:"date"`

	Symbol  *string `gorm:"type:varchar(30)" json:"symbol,omitempty"`
	Side    *string `gorm:"type:varchar(10)" json:"side,omitempty"`
	Session string  `gorm:"type:varchar(30);not null;index" json:"session"`

	RiskPercentage *decimal.Decimal `gorm:"type:numeric(10,4)" json:"risk_percentage,omitempty"`
	RR             *decimal.Decimal `gorm:"column:rr;type:numeric(10,4)" json:"rr,omitempty"`

	Result string `gorm:"type:varchar(20);not null;index" json:"result"`

	// PnLDollar, when present, is the authoritative signed outcome for
	// this trade. Derived risk/RR math never overrides it.
	PnLDollar *decimal.Decimal `gorm:"column:pnl_dollar;type:numeric(30,10)" json:"pnl_dollar,omitempty"`

	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	ImageURL    string         `gorm:"type:text" json:"image_url,omitempty"`
	StrategyTag string         `gorm:"type:varchar(50);index" json:"strategy_tag,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// Outcome returns the normalized result enum.
func (t *Trade) Outcome() TradeResult {
	return ParseTradeResult(t.Result)
}
