package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"corebank/internal/platform/storage"
)

// CredentialRecord is the gorm model backing the database driver.
type CredentialRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:128"`
	PasswordHash string `gorm:"size:64"`
	UserID       string `gorm:"size:128"`
	Email        string `gorm:"size:256"`
}

func (CredentialRecord) TableName() string {
	return "credentials"
}

type databaseStore struct {
	store *storage.Store
}

// NewDatabase builds a credential store over the shared record store.
func NewDatabase(st *storage.Store) (Store, error) {
	if st == nil {
		return nil, fmt.Errorf("database driver requires a record store")
	}
	if err := st.Migrate(&CredentialRecord{}); err != nil {
		return nil, err
	}
	return &databaseStore{store: st}, nil
}

func (s *databaseStore) Lookup(ctx context.Context, username string) (Credential, bool, error) {
	session, cancel, err := s.store.Session(ctx)
	if err != nil {
		return Credential{}, false, err
	}
	defer cancel()

	var record CredentialRecord
	err = session.Where("username = ?", username).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Credential{}, false, nil
	}
	if err != nil {
		return Credential{}, false, fmt.Errorf("credential lookup: %w", err)
	}

	return Credential{
		Username:     record.Username,
		PasswordHash: record.PasswordHash,
		UserID:       record.UserID,
		Email:        record.Email,
	}, true, nil
}

func (s *databaseStore) Close(context.Context) error {
	return nil
}
