package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the balance container trades belong to. Exactly one
// account carries is_active per user; the repository enforces that
// inside a transaction when the flag moves.
type Account struct {
	ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	StartingBalance decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"starting_balance"`
	CurrentBalance  decimal.Decimal `gorm:"type:numeric(30,10);not null;default:0" json:"current_balance"`

	IsActive bool `gorm:"not null;default:false;index" json:"is_active"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
