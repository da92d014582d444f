package storage

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	platformerrors "corebank/internal/platform/errors"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenDialector(sqlite.Open("file:storage_test?mode=memory&cache=shared"), time.Second)
	if err != nil {
		t.Fatalf("OpenDialector error: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestStoreSessionScopedQueries(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	if err := st.Migrate(&widget{}); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	session, cancel, err := st.Session(ctx)
	if err != nil {
		t.Fatalf("Session error: %v", err)
	}
	if err := session.Create(&widget{Name: "one"}).Error; err != nil {
		cancel()
		t.Fatalf("insert failed: %v", err)
	}
	cancel()

	session, cancel, err = st.Session(ctx)
	if err != nil {
		t.Fatalf("Session error: %v", err)
	}
	defer cancel()

	var count int64
	if err := session.Model(&widget{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, expected 1", count)
	}
}

func TestStoreProbe(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	if err := st.Probe(ctx); err != nil {
		t.Fatalf("Probe error: %v", err)
	}
}

func TestStoreSessionAfterClose(t *testing.T) {
	ctx := context.Background()
	st, err := OpenDialector(sqlite.Open("file:storage_closed?mode=memory&cache=shared"), time.Second)
	if err != nil {
		t.Fatalf("OpenDialector error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, _, err := st.Session(ctx); !platformerrors.IsKind(err, platformerrors.KindDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if err := st.Probe(ctx); !platformerrors.IsKind(err, platformerrors.KindDependency) {
		t.Fatalf("expected dependency error from probe, got %v", err)
	}
}
