package surveys

import (
	"context"
	"errors"
	"testing"
)

func TestSubmitStoresNormalizedResult(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	a := completeAnswers()
	a.FitIssues = []string{OtherPlaceholder}
	a.FitIssuesOther = "hard to find long inseams"

	resp, err := svc.Submit(context.Background(), a)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.ID == "" || resp.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", resp)
	}

	items, _ := repo.List(context.Background(), 0, 0)
	if len(items) != 1 {
		t.Fatalf("expected one stored result, got %d", len(items))
	}
	if len(items[0].FitIssues) != 1 || items[0].FitIssues[0] != "hard to find long inseams" {
		t.Fatalf("unexpected stored fit issues %v", items[0].FitIssues)
	}
}

func TestSubmitInvalidStoresNothing(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	a := completeAnswers()
	a.Identity = ""
	if _, err := svc.Submit(context.Background(), a); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	items, _ := repo.List(context.Background(), 0, 0)
	if len(items) != 0 {
		t.Fatalf("expected nothing stored")
	}
}
