package measurements

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestServiceCreateStoresOneRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	fixed := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }

	m, err := svc.Create(context.Background(), IntakeForm{Email: "a@b.co", HeightCM: "170", WaistCM: "80"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected generated id")
	}
	if m.MannequinStatus != StatusAbsent || m.MannequinURL != nil {
		t.Fatalf("new record must start without a mannequin: %+v", m)
	}

	items, _ := repo.List(context.Background(), 0, 0)
	if len(items) != 1 {
		t.Fatalf("expected one stored record, got %d", len(items))
	}
	if !items[0].CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected created_at %s", items[0].CreatedAt)
	}
}

func TestServiceCreateRejectsBeforeInsert(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), IntakeForm{Email: "a@b.co", HeightCM: "0"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	items, _ := repo.List(context.Background(), 0, 0)
	if len(items) != 0 {
		t.Fatalf("expected no stored records, got %d", len(items))
	}
}

func TestMemoryRepoMarkGenerated(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	_ = repo.Create(ctx, Measurement{ID: "m-1", Email: "a@b.co", HeightCM: 170, MannequinStatus: StatusAbsent})

	if err := repo.MarkGenerated(ctx, "m-1", "", time.Now()); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if err := repo.MarkGenerated(ctx, "missing", "https://cdn/x.glb", time.Now()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.MarkGenerated(ctx, "m-1", "https://cdn/m-1/mannequin.glb", time.Now()); err != nil {
		t.Fatalf("MarkGenerated: %v", err)
	}

	m, _ := repo.GetByID(ctx, "m-1")
	if !m.Ready() {
		t.Fatalf("expected ready record, got %+v", m)
	}
	if m.LastGeneratedAt == nil {
		t.Fatalf("expected generation timestamp")
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		_ = repo.Create(ctx, Measurement{ID: id, HeightCM: 170, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	items, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != "new" || items[1].ID != "mid" {
		t.Fatalf("unexpected order: %+v", items)
	}

	items, _ = repo.List(ctx, 2, 5)
	if len(items) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(items))
	}
}
