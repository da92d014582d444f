// Package accounts implements the account service's record access. Every
// operation is scoped to the authenticated user: handlers pass the token's
// user id and the queries never cross that boundary.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	platformerrors "corebank/internal/platform/errors"
	"corebank/internal/platform/storage"
)

// Account is the gorm model for one bank account row.
type Account struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	UserID        string  `gorm:"index;size:128" json:"-"`
	AccountNumber string  `gorm:"uniqueIndex;size:64" json:"account_number"`
	Balance       float64 `json:"balance"`
	AccountType   string  `gorm:"size:32" json:"type"`
}

func (Account) TableName() string {
	return "accounts"
}

// Service owns account reads and writes against the shared record store.
type Service struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewService wires the service and migrates its model.
func NewService(st *storage.Store, logger *slog.Logger) (*Service, error) {
	if st == nil {
		return nil, errors.New("accounts service requires a record store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := st.Migrate(&Account{}); err != nil {
		return nil, err
	}
	return &Service{store: st, logger: logger}, nil
}

// List returns all accounts owned by userID.
func (s *Service) List(ctx context.Context, userID string) ([]Account, error) {
	session, cancel, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var accounts []Account
	if err := session.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		s.logger.Error("account query failed", slog.Any("error", err))
		return nil, platformerrors.Wrap(
			platformerrors.KindInternal,
			"accounts list",
			"query accounts",
			err,
		)
	}
	return accounts, nil
}

// Get returns a single account, provided it belongs to userID.
func (s *Service) Get(ctx context.Context, userID, accountNumber string) (Account, error) {
	session, cancel, err := s.store.Session(ctx)
	if err != nil {
		return Account{}, err
	}
	defer cancel()

	var account Account
	err = session.
		Where("user_id = ? AND account_number = ?", userID, accountNumber).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, platformerrors.New(
			platformerrors.KindNotFound,
			"accounts get",
			"account not found",
		)
	}
	if err != nil {
		s.logger.Error("account query failed", slog.Any("error", err))
		return Account{}, platformerrors.Wrap(
			platformerrors.KindInternal,
			"accounts get",
			"query account",
			err,
		)
	}
	return account, nil
}

// CreateParams carries the optional fields of a new account.
type CreateParams struct {
	AccountNumber string
	Balance       float64
	AccountType   string
}

// Create inserts a new account for userID.
func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (Account, error) {
	if params.AccountNumber == "" {
		return Account{}, platformerrors.New(
			platformerrors.KindValidation,
			"accounts create",
			"account_number required",
		)
	}
	if params.AccountType == "" {
		params.AccountType = "checking"
	}

	session, cancel, err := s.store.Session(ctx)
	if err != nil {
		return Account{}, err
	}
	defer cancel()

	account := Account{
		UserID:        userID,
		AccountNumber: params.AccountNumber,
		Balance:       params.Balance,
		AccountType:   params.AccountType,
	}
	if err := session.Create(&account).Error; err != nil {
		s.logger.Error("account insert failed", slog.Any("error", err))
		return Account{}, platformerrors.Wrap(
			platformerrors.KindInternal,
			"accounts create",
			fmt.Sprintf("insert account %s", params.AccountNumber),
			err,
		)
	}
	return account, nil
}
