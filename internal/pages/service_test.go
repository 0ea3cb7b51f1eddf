package pages_test

import (
	"context"
	"errors"
	"testing"
	"time"

	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/pages"
	"github.com/google/uuid"
)

func seedPage(t *testing.T, repo *intpages.MemoryPageRepository) *pages.ServicePage {
	t.Helper()

	record, err := repo.Create(context.Background(), &pages.ServicePage{
		ID:              uuid.New(),
		ServiceID:       uuid.New(),
		CityID:          uuid.New(),
		Title:           "Web Design in Pune",
		MetaTitle:       "Web Design in Pune | Example Studio",
		MetaDescription: "Professional web design services in Pune.",
		Keywords:        []string{"web design pune"},
		Content:         "## Overview\n\nWeb design for Pune businesses.",
		Slug:            "pune-web-design",
		CanonicalURL:    "https://example.com/pune-web-design",
		IsGenerated:     true,
		CreatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return record
}

func TestUpdatePageMetaMarksPageHandCurated(t *testing.T) {
	repo := intpages.NewMemoryPageRepository()
	record := seedPage(t, repo)

	stamp := time.Date(2025, 7, 4, 12, 30, 0, 0, time.UTC)
	svc := intpages.NewService(repo, intpages.WithClock(func() time.Time { return stamp }))

	title := "  Award-Winning Web Design in Pune  "
	updated, err := svc.UpdatePageMeta(context.Background(), intpages.UpdateMetaRequest{
		ID:       record.ID,
		Title:    &title,
		Keywords: []string{"web design pune", "pune agency"},
	})
	if err != nil {
		t.Fatalf("UpdatePageMeta returned error: %v", err)
	}

	if updated.Title != "Award-Winning Web Design in Pune" {
		t.Fatalf("expected trimmed title, got %q", updated.Title)
	}
	if updated.IsGenerated {
		t.Fatal("expected edited page to be marked hand-curated")
	}
	if !updated.UpdatedAt.Equal(stamp) {
		t.Fatalf("expected UpdatedAt %v, got %v", stamp, updated.UpdatedAt)
	}
	if len(updated.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(updated.Keywords))
	}
	if updated.MetaTitle != record.MetaTitle {
		t.Fatalf("expected untouched meta title, got %q", updated.MetaTitle)
	}
}

func TestUpdatePageMetaWithoutEditsLeavesGeneratedFlag(t *testing.T) {
	repo := intpages.NewMemoryPageRepository()
	record := seedPage(t, repo)

	svc := intpages.NewService(repo)

	updated, err := svc.UpdatePageMeta(context.Background(), intpages.UpdateMetaRequest{ID: record.ID})
	if err != nil {
		t.Fatalf("UpdatePageMeta returned error: %v", err)
	}
	if !updated.IsGenerated {
		t.Fatal("expected untouched page to stay generated")
	}
	if !updated.UpdatedAt.Equal(record.UpdatedAt) {
		t.Fatalf("expected UpdatedAt unchanged, got %v", updated.UpdatedAt)
	}
}

func TestUpdatePageMetaRequiresID(t *testing.T) {
	svc := intpages.NewService(intpages.NewMemoryPageRepository())

	if _, err := svc.UpdatePageMeta(context.Background(), intpages.UpdateMetaRequest{}); !errors.Is(err, pages.ErrPageIDRequired) {
		t.Fatalf("expected ErrPageIDRequired, got %v", err)
	}
	if _, err := svc.GetPage(context.Background(), uuid.Nil); !errors.Is(err, pages.ErrPageIDRequired) {
		t.Fatalf("expected ErrPageIDRequired, got %v", err)
	}
	if err := svc.DeletePage(context.Background(), uuid.Nil); !errors.Is(err, pages.ErrPageIDRequired) {
		t.Fatalf("expected ErrPageIDRequired, got %v", err)
	}
}

func TestGetPageBySlugTrimsInput(t *testing.T) {
	repo := intpages.NewMemoryPageRepository()
	record := seedPage(t, repo)

	svc := intpages.NewService(repo)

	found, err := svc.GetPageBySlug(context.Background(), "  pune-web-design  ")
	if err != nil {
		t.Fatalf("GetPageBySlug returned error: %v", err)
	}
	if found.ID != record.ID {
		t.Fatalf("expected page %s, got %s", record.ID, found.ID)
	}

	var notFound *intpages.NotFoundError
	if _, err := svc.GetPageBySlug(context.Background(), "missing-slug"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeletePageRemovesRecord(t *testing.T) {
	repo := intpages.NewMemoryPageRepository()
	record := seedPage(t, repo)

	svc := intpages.NewService(repo)

	if err := svc.DeletePage(context.Background(), record.ID); err != nil {
		t.Fatalf("DeletePage returned error: %v", err)
	}

	var notFound *intpages.NotFoundError
	if _, err := svc.GetPage(context.Background(), record.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
