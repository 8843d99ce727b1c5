package memory

import (
	"context"
	"errors"
	"testing"

	"carehome/internal/infra/persistence/persistencetest"
	"carehome/pkg/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	persistencetest.RoundTrip(t, NewStore())
}

func TestLoadBeforeSave(t *testing.T) {
	if _, err := NewStore().LoadSnapshot(context.Background()); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSavedSnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	snap := persistencetest.Fixture()
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	snap.Staff["mgr"] = domain.Staff{Username: "mgr", Name: "changed"}
	got, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Staff["mgr"].Name != "Manager" {
		t.Fatalf("caller mutation leaked into store: %+v", got.Staff["mgr"])
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewStore().SaveSnapshot(ctx, persistencetest.Fixture()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
