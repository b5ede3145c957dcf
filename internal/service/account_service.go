package service

import (
	"context"
	"fmt"
	"strings"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
	"ledger-recon/pkg/logger"
)

type AccountService interface {
	Lookup(ctx context.Context, id int64) (*domain.Account, error)
	FindByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) error
}

type accountService struct {
	store repository.Store
}

func NewAccountService(store repository.Store) AccountService {
	return &accountService{store: store}
}

func (s *accountService) Lookup(ctx context.Context, id int64) (*domain.Account, error) {
	return s.store.Accounts().GetByID(ctx, id)
}

func (s *accountService) FindByCode(ctx context.Context, code string) (*domain.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("account code cannot be empty")
	}
	return s.store.Accounts().GetByCode(ctx, code)
}

func (s *accountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.store.Accounts().List(ctx)
}

func (s *accountService) Create(ctx context.Context, acc *domain.Account) error {
	if err := s.validate(acc); err != nil {
		return err
	}

	if acc.ParentID != nil {
		if _, err := s.store.Accounts().GetByID(ctx, *acc.ParentID); err != nil {
			return fmt.Errorf("parent account: %w", err)
		}
	}

	if err := s.store.Accounts().Create(ctx, acc); err != nil {
		return err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"account_id": acc.ID,
		"code":       acc.Code,
	}).Info("Account created")
	return nil
}

func (s *accountService) validate(acc *domain.Account) error {
	acc.Code = strings.TrimSpace(acc.Code)
	if acc.Code == "" {
		return domain.NewValidationError("account code is required")
	}
	if strings.TrimSpace(acc.Name) == "" {
		return domain.NewValidationError("account name is required")
	}
	if !acc.Type.Valid() {
		return domain.NewValidationError("invalid account type: %s", acc.Type)
	}
	if !acc.NormalSide.Valid() {
		return domain.NewValidationError("invalid normal balance side: %s", acc.NormalSide)
	}
	return nil
}
