package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/stats"
)

// stubRepo is an in-memory repository for service tests. It mirrors the
// ordering guarantees of the gorm store where tests depend on them.
type stubRepo struct {
	trades    map[string]models.Trade
	accounts  map[string]models.Account
	snapshots map[string]models.BalanceSnapshot // key accountID|day
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		trades:    map[string]models.Trade{},
		accounts:  map[string]models.Account{},
		snapshots: map[string]models.BalanceSnapshot{},
	}
}

func (r *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (r *stubRepo) InsertTrade(ctx context.Context, item *models.Trade) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.trades[item.ID] = *item
	return nil
}

func (r *stubRepo) GetTradeByID(ctx context.Context, id string) (*models.Trade, error) {
	if t, ok := r.trades[id]; ok {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (r *stubRepo) UpdateTrade(ctx context.Context, id string, updates map[string]any) error {
	t, ok := r.trades[id]
	if !ok {
		return nil
	}
	if v, ok := updates["result"].(string); ok {
		t.Result = v
	}
	if v, ok := updates["session"].(string); ok {
		t.Session = v
	}
	if v, ok := updates["notes"].(string); ok {
		t.Notes = v
	}
	if v, ok := updates["image_url"].(string); ok {
		t.ImageURL = v
	}
	t.UpdatedAt = time.Now().UTC()
	r.trades[id] = t
	return nil
}

func (r *stubRepo) DeleteTrade(ctx context.Context, id string) error {
	delete(r.trades, id)
	return nil
}

func (r *stubRepo) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	return r.ListAllTradesByAccount(ctx, deref(params.AccountID))
}

func (r *stubRepo) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	items, _ := r.ListTrades(ctx, params)
	return int64(len(items)), nil
}

func (r *stubRepo) ListAllTradesByAccount(ctx context.Context, accountID string) ([]models.Trade, error) {
	out := make([]models.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		if accountID == "" || t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return stats.RecencyLess(&out[i], &out[j])
	})
	return out, nil
}

func (r *stubRepo) InsertAccount(ctx context.Context, item *models.Account) error {
	r.accounts[item.ID] = *item
	return nil
}

func (r *stubRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *stubRepo) GetActiveAccount(ctx context.Context) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.IsActive {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	out := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRepo) UpdateAccount(ctx context.Context, id string, updates map[string]any) error {
	a, ok := r.accounts[id]
	if !ok {
		return nil
	}
	if v, ok := updates["current_balance"].(decimal.Decimal); ok {
		a.CurrentBalance = v
	}
	if v, ok := updates["starting_balance"].(decimal.Decimal); ok {
		a.StartingBalance = v
	}
	if v, ok := updates["is_active"].(bool); ok {
		a.IsActive = v
	}
	if v, ok := updates["name"].(string); ok {
		a.Name = v
	}
	a.UpdatedAt = time.Now().UTC()
	r.accounts[id] = a
	return nil
}

func (r *stubRepo) SetActiveAccount(ctx context.Context, id string) error {
	for k, a := range r.accounts {
		a.IsActive = k == id
		r.accounts[k] = a
	}
	return nil
}

func (r *stubRepo) DeleteAccount(ctx context.Context, id string) error {
	delete(r.accounts, id)
	for k, t := range r.trades {
		if t.AccountID == id {
			delete(r.trades, k)
		}
	}
	for k, s := range r.snapshots {
		if s.AccountID == id {
			delete(r.snapshots, k)
		}
	}
	return nil
}

func (r *stubRepo) UpsertBalanceSnapshot(ctx context.Context, item *models.BalanceSnapshot) error {
	key := item.AccountID + "|" + item.SnapshotAt.Format("2006-01-02")
	r.snapshots[key] = *item
	return nil
}

func (r *stubRepo) ListBalanceSnapshots(ctx context.Context, params repository.ListBalanceSnapshotsParams) ([]models.BalanceSnapshot, error) {
	out := make([]models.BalanceSnapshot, 0, len(r.snapshots))
	for _, s := range r.snapshots {
		if params.AccountID != nil && s.AccountID != *params.AccountID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SnapshotAt.Before(out[j].SnapshotAt) })
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
