// Package transactions implements the transaction service's read path over
// the shared record store. Rows are written by the settlement pipeline
// outside this fleet; this service only lists them.
package transactions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	platformerrors "corebank/internal/platform/errors"
	"corebank/internal/platform/storage"
)

// Transaction is the gorm model for one ledger entry.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	AccountNumber   string    `gorm:"index;size:64" json:"-"`
	Amount          float64   `json:"amount"`
	TransactionType string    `gorm:"size:32" json:"type"`
	Description     string    `gorm:"size:256" json:"description"`
	CreatedAt       time.Time `json:"timestamp"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Service owns transaction reads against the shared record store.
type Service struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewService wires the service and migrates its model.
func NewService(st *storage.Store, logger *slog.Logger) (*Service, error) {
	if st == nil {
		return nil, errors.New("transactions service requires a record store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := st.Migrate(&Transaction{}); err != nil {
		return nil, err
	}
	return &Service{store: st, logger: logger}, nil
}

// ListByAccount returns the account's transactions, newest first.
func (s *Service) ListByAccount(ctx context.Context, accountNumber string) ([]Transaction, error) {
	session, cancel, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var txs []Transaction
	err = session.
		Where("account_number = ?", accountNumber).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		s.logger.Error("transaction query failed", slog.Any("error", err))
		return nil, platformerrors.Wrap(
			platformerrors.KindInternal,
			"transactions list",
			"query transactions",
			err,
		)
	}
	return txs, nil
}
