package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pricelens/backend/internal/domain"
)

func TestVectorCache_SetAndGet(t *testing.T) {
	cache := NewVectorCache()
	ctx := context.Background()

	vec := []float64{0.1, 0.2, 0.3}
	if err := cache.Set(ctx, "iPhone 15 128GB", vec); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, "iPhone 15 128GB")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != len(vec) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(vec))
	}
	for i := range vec {
		if got[i] != vec[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], vec[i])
		}
	}
}

func TestVectorCache_Get_CacheMiss(t *testing.T) {
	cache := NewVectorCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "never-embedded title")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestVectorCache_KeyedByExactTitle(t *testing.T) {
	cache := NewVectorCache()
	ctx := context.Background()

	cache.Set(ctx, "iPhone 15", []float64{1})

	// Case and whitespace variants are distinct keys
	if _, err := cache.Get(ctx, "iphone 15"); err != domain.ErrCacheMiss {
		t.Errorf("Get(lowercased) error = %v, want cache miss", err)
	}
	if _, err := cache.Get(ctx, "iPhone 15 "); err != domain.ErrCacheMiss {
		t.Errorf("Get(trailing space) error = %v, want cache miss", err)
	}
}

func TestVectorCache_SizeAndClear(t *testing.T) {
	cache := NewVectorCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		cache.Set(ctx, fmt.Sprintf("title-%d", i), []float64{float64(i)})
	}
	if cache.Size() != 5 {
		t.Errorf("Size() = %d, want 5", cache.Size())
	}

	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", cache.Size())
	}
}

func TestVectorCache_ConcurrentAccess(t *testing.T) {
	cache := NewVectorCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("title-%d", n%10)
			cache.Set(ctx, key, []float64{float64(n)})
			cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if cache.Size() != 10 {
		t.Errorf("Size() = %d, want 10", cache.Size())
	}
}

func TestVerdictCache_SetAndGet(t *testing.T) {
	cache := NewVerdictCache()
	ctx := context.Background()

	key := "Amazon:61000|Flipkart:60000"
	verdict := "Flipkart offers the best price at ₹60000, ₹1000 cheaper than the next option."

	if err := cache.Set(ctx, key, verdict); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != verdict {
		t.Errorf("Get() = %q, want %q", got, verdict)
	}
}

func TestVerdictCache_Get_CacheMiss(t *testing.T) {
	cache := NewVerdictCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "unknown-offer-set")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestVerdictCache_ConcurrentAccess(t *testing.T) {
	cache := NewVerdictCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("offers-%d", n%5)
			cache.Set(ctx, key, "verdict")
			cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if cache.Size() != 5 {
		t.Errorf("Size() = %d, want 5", cache.Size())
	}
}
