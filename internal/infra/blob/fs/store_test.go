package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carehome/internal/blob/core"
)

func TestPutGetHeadDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Driver() != core.DriverFilesystem || store.Root() != root {
		t.Fatalf("unexpected store %s %s", store.Driver(), store.Root())
	}

	info, err := store.Put(ctx, "archives/R1/a.csv", strings.NewReader("hello"), core.PutOptions{
		ContentType: "text/csv",
		Metadata:    map[string]string{"resident": "R1"},
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != 5 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, err := os.Stat(filepath.Join(root, "archives", "R1", "a.csv.meta")); err != nil {
		t.Fatalf("expected sidecar: %v", err)
	}

	head, err := store.Head(ctx, "archives/R1/a.csv")
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if head.ContentType != "text/csv" || head.Metadata["resident"] != "R1" || head.ETag != info.ETag {
		t.Fatalf("unexpected head %+v", head)
	}

	_, rc, err := store.Get(ctx, "archives/R1/a.csv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "hello" {
		t.Fatalf("unexpected body %q", body)
	}

	existed, err := store.Delete(ctx, "archives/R1/a.csv")
	if err != nil || !existed {
		t.Fatalf("Delete: existed=%v err=%v", existed, err)
	}
	existed, err = store.Delete(ctx, "archives/R1/a.csv")
	if err != nil || existed {
		t.Fatalf("second Delete: existed=%v err=%v", existed, err)
	}
	if _, err := store.Head(ctx, "archives/R1/a.csv"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutIsCreateOnly(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := store.Put(ctx, "k", strings.NewReader("b"), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestInvalidKeys(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, key := range []string{"", "  ", "/abs", "../escape", "a/../../b", "x.meta"} {
		if _, err := store.Put(context.Background(), key, strings.NewReader("x"), core.PutOptions{}); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestListOrdersByKeyAndFiltersPrefix(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, k := range []string{"archives/R2/b.csv", "archives/R1/a.csv", "audit/log.csv"} {
		if _, err := store.Put(ctx, k, strings.NewReader(k), core.PutOptions{}); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}
	list, err := store.List(ctx, "archives/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Key != "archives/R1/a.csv" || list[1].Key != "archives/R2/b.csv" {
		t.Fatalf("unexpected list %+v", list)
	}
	all, err := store.List(ctx, "")
	if err != nil || len(all) != 3 {
		t.Fatalf("List all: %d %v", len(all), err)
	}
}

func TestGetMissing(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := store.Get(context.Background(), "nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
