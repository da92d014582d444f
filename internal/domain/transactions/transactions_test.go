package transactions

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	"corebank/internal/platform/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	st, err := storage.OpenDialector(sqlite.Open("file:transactions_test?mode=memory&cache=shared"), time.Second)
	if err != nil {
		t.Fatalf("open record store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	svc, err := NewService(st, nil)
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	return svc, st
}

func TestServiceListByAccountOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	session, cancel, err := st.Session(ctx)
	if err != nil {
		t.Fatalf("Session error: %v", err)
	}
	defer cancel()

	base := time.Now().Add(-time.Hour)
	seed := []Transaction{
		{AccountNumber: "ACC-1001", Amount: 10, TransactionType: "deposit", Description: "first", CreatedAt: base},
		{AccountNumber: "ACC-1001", Amount: -4, TransactionType: "withdrawal", Description: "second", CreatedAt: base.Add(10 * time.Minute)},
		{AccountNumber: "ACC-2002", Amount: 99, TransactionType: "deposit", Description: "other account", CreatedAt: base.Add(20 * time.Minute)},
	}
	for i := range seed {
		if err := session.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	list, err := svc.ListByAccount(ctx, "ACC-1001")
	if err != nil {
		t.Fatalf("ListByAccount error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].Description != "second" || list[1].Description != "first" {
		t.Fatalf("expected newest first ordering, got %+v", list)
	}
}

func TestServiceListByAccountEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	list, err := svc.ListByAccount(ctx, "ACC-NONE")
	if err != nil {
		t.Fatalf("ListByAccount error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty result, got %+v", list)
	}
}
