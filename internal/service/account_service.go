package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/stream"
)

// AccountService owns account writes. The first account ever created
// becomes active automatically; afterwards activation is explicit.
type AccountService struct {
	Repo repository.Repository
	Hub  *stream.Hub
}

func (s *AccountService) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if s == nil || s.Repo == nil || account == nil {
		return nil, nil
	}
	account.Name = strings.TrimSpace(account.Name)
	if account.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if account.StartingBalance.IsNegative() {
		return nil, fmt.Errorf("starting balance cannot be negative")
	}
	if strings.TrimSpace(account.ID) == "" {
		account.ID = uuid.NewString()
	}
	account.CurrentBalance = account.StartingBalance

	existing, err := s.Repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	account.IsActive = len(existing) == 0

	if err := s.Repo.InsertAccount(ctx, account); err != nil {
		return nil, err
	}
	if account.IsActive {
		s.Hub.Publish(stream.Event{Kind: stream.EventAccountChanged, AccountID: account.ID})
	}
	return account, nil
}

// AccountPatch carries the updatable account fields; nil means untouched.
type AccountPatch struct {
	Name            *string
	StartingBalance *decimal.Decimal
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, patch AccountPatch) (*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	existing, err := s.Repo.GetAccountByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("name is required")
		}
		updates["name"] = name
	}
	if patch.StartingBalance != nil {
		if patch.StartingBalance.IsNegative() {
			return nil, fmt.Errorf("starting balance cannot be negative")
		}
		updates["starting_balance"] = *patch.StartingBalance
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateAccount(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetAccountByID(ctx, id)
}

// Activate makes the given account the single active one and notifies
// dashboard clients so they reload against the new account.
func (s *AccountService) Activate(ctx context.Context, id string) (*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	existing, err := s.Repo.GetAccountByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := s.Repo.SetActiveAccount(ctx, id); err != nil {
		return nil, err
	}
	s.Hub.Publish(stream.Event{Kind: stream.EventAccountChanged, AccountID: id})
	return s.Repo.GetAccountByID(ctx, id)
}

// DeleteAccount removes the account together with its trades and
// snapshots. Deleting the active account leaves no account active.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) (bool, error) {
	if s == nil || s.Repo == nil {
		return false, nil
	}
	existing, err := s.Repo.GetAccountByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := s.Repo.DeleteAccount(ctx, id); err != nil {
		return false, err
	}
	if existing.IsActive {
		s.Hub.Publish(stream.Event{Kind: stream.EventAccountChanged, AccountID: id})
	}
	return true, nil
}
