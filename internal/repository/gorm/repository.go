package gormrepository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Trades -----------------------------------------------------------------

func (s *Store) InsertTrade(ctx context.Context, item *models.Trade) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetTradeByID(ctx context.Context, id string) (*models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	var item models.Trade
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("id = ?", id).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpdateTrade(ctx context.Context, id string, updates map[string]any) error {
	if s == nil || s.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *Store) DeleteTrade(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Trade{}).Error
}

func applyTradeFilters(query *gorm.DB, params repository.ListTradesParams) *gorm.DB {
	if params.AccountID != nil && strings.TrimSpace(*params.AccountID) != "" {
		query = query.Where("account_id = ?", strings.TrimSpace(*params.AccountID))
	}
	if params.Session != nil && strings.TrimSpace(*params.Session) != "" {
		query = query.Where("session = ?", strings.TrimSpace(*params.Session))
	}
	if params.Result != nil && strings.TrimSpace(*params.Result) != "" {
		query = query.Where("result = ?", string(models.ParseTradeResult(*params.Result)))
	}
	if params.Symbol != nil && strings.TrimSpace(*params.Symbol) != "" {
		query = query.Where("symbol = ?", strings.TrimSpace(*params.Symbol))
	}
	if params.StrategyTag != nil && strings.TrimSpace(*params.StrategyTag) != "" {
		query = query.Where("strategy_tag = ?", strings.TrimSpace(*params.StrategyTag))
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("date >= ?", params.Since.UTC())
	}
	if params.Until != nil && !params.Until.IsZero() {
		query = query.Where("date <= ?", params.Until.UTC())
	}
	return query
}

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyTradeFilters(s.db.WithContext(ctx).Model(&models.Trade{}), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "date")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.Trade
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	query := applyTradeFilters(s.db.WithContext(ctx).Model(&models.Trade{}), params)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListAllTradesByAccount(ctx context.Context, accountID string) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, nil
	}
	var items []models.Trade
	// Recency order feeds the streak scan; keep the three-key sort in
	// step with stats.RecencyLess.
	if err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("account_id = ?", accountID).
		Order("updated_at desc, created_at desc, date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- Accounts ---------------------------------------------------------------

func (s *Store) InsertAccount(ctx context.Context, item *models.Account) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	var item models.Account
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetActiveAccount(ctx context.Context) (*models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Account
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("is_active = ?", true).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Account
	if err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id string, updates map[string]any) error {
	if s == nil || s.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// SetActiveAccount moves the active flag inside one transaction so the
// exactly-one-active invariant holds even under concurrent switches.
func (s *Store) SetActiveAccount(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Account{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Account{}).
			Where("id = ?", id).
			Update("is_active", true).Error
	})
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&models.BalanceSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Account{}).Error
	})
}

// --- Balance snapshots ------------------------------------------------------

func (s *Store) UpsertBalanceSnapshot(ctx context.Context, item *models.BalanceSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.AccountID) == "" || item.SnapshotAt.IsZero() {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "snapshot_at"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"balance",
			"total_pnl",
			"trade_count",
		}),
	}).Create(item).Error
}

func (s *Store) ListBalanceSnapshots(ctx context.Context, params repository.ListBalanceSnapshotsParams) ([]models.BalanceSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.BalanceSnapshot{})
	if params.AccountID != nil && strings.TrimSpace(*params.AccountID) != "" {
		query = query.Where("account_id = ?", strings.TrimSpace(*params.AccountID))
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("snapshot_at >= ?", params.Since.UTC())
	}
	if params.Until != nil && !params.Until.IsZero() {
		query = query.Where("snapshot_at <= ?", params.Until.UTC())
	}
	limit := normalizeLimit(params.Limit, 500)
	offset := normalizeOffset(params.Offset)
	var items []models.BalanceSnapshot
	if err := query.Order("snapshot_at asc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
