package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gamefinder/gamefinder/internal/domain"
)

func strp(s string) *string { return &s }

func TestMemoryUpsertKeepsInternalID(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, domain.User{
		Provider:    domain.AuthProviderGoogle,
		ProviderID:  "sub-123",
		Email:       "old@example.com",
		DisplayName: "Old Name",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected allocated id")
	}

	second, err := repo.Upsert(ctx, domain.User{
		Provider:    domain.AuthProviderGoogle,
		ProviderID:  "sub-123",
		Email:       "new@example.com",
		DisplayName: "New Name",
		PictureURL:  strp("https://example.com/p.png"),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected stable id %d, got %d", first.ID, second.ID)
	}
	if second.Email != "new@example.com" {
		t.Errorf("expected refreshed email, got %q", second.Email)
	}
	if second.DisplayName != "New Name" {
		t.Errorf("expected refreshed name, got %q", second.DisplayName)
	}
	if second.PictureURL == nil || *second.PictureURL != "https://example.com/p.png" {
		t.Errorf("expected refreshed picture, got %v", second.PictureURL)
	}
}

func TestMemoryFindByProviderID(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, domain.User{
		Provider:   domain.AuthProviderGoogle,
		ProviderID: "sub-9",
		Email:      "c@example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	found, err := repo.FindByProviderID(ctx, domain.AuthProviderGoogle, "sub-9")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}

	if _, err := repo.FindByProviderID(ctx, domain.AuthProviderGoogle, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryFindByID(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	created, err := repo.Upsert(ctx, domain.User{
		Provider:   domain.AuthProviderGoogle,
		ProviderID: "sub-1",
		Email:      "d@example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Email != "d@example.com" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestMemoryConcurrentUpsertSameIdentity(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := repo.Upsert(ctx, domain.User{
				Provider:   domain.AuthProviderGoogle,
				ProviderID: "shared-sub",
				Email:      "e@example.com",
			})
			if err != nil {
				t.Errorf("upsert: %v", err)
				return
			}
			ids <- user.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		seen[id] = true
	}
	if len(seen) != 1 {
		t.Errorf("expected a single user id across concurrent upserts, got %d", len(seen))
	}
}
