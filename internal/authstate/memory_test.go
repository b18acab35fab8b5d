package authstate

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreTakeConsumesOnce(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	login := PendingLogin{Verifier: "v", RedirectPath: "/dashboard", CreatedAt: time.Now()}
	if err := store.Put(ctx, "state-1", login, time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Take(ctx, "state-1")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry on first take")
	}
	if got.Verifier != "v" || got.RedirectPath != "/dashboard" {
		t.Errorf("unexpected entry: %+v", got)
	}

	got, err = store.Take(ctx, "state-1")
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if got != nil {
		t.Error("expected nil on second take")
	}
}

func TestMemoryStoreTakeUnknown(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Take(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown state")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "state-2", PendingLogin{Verifier: "v"}, 10*time.Millisecond); err != nil {
		t.Fatalf("put: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	got, err := store.Take(ctx, "state-2")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got != nil {
		t.Error("expected expired entry to be gone")
	}
}

func TestMemoryStoreConcurrentTake(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "state-3", PendingLogin{Verifier: "v"}, time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan *PendingLogin, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.Take(ctx, "state-3")
			if err != nil {
				t.Errorf("take: %v", err)
				return
			}
			results <- got
		}()
	}
	wg.Wait()
	close(results)

	var hits int
	for got := range results {
		if got != nil {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("expected exactly one successful take, got %d", hits)
	}
}
