package sequence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSeed(n int64) Seeder {
	return func(ctx context.Context, prefix string) (int64, error) {
		return n, nil
	}
}

func TestVoucherNumber(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PZ-20250115-", VoucherPrefix(day))
	assert.Equal(t, "PZ-20250115-0001", VoucherNumber(day, 1))
	assert.Equal(t, "PZ-20250115-0042", VoucherNumber(day, 42))
}

func TestLocalGenerator_ContinuesFromHighestInUse(t *testing.T) {
	calls := 0
	g := NewLocalGenerator(func(ctx context.Context, prefix string) (int64, error) {
		calls++
		if prefix == "PZ-20250115-" {
			return 5, nil
		}
		return 0, nil
	})
	ctx := context.Background()

	n, err := g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = g.Next(ctx, "PZ-20250116-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 3, calls)
}

func TestLocalGenerator_JumpsPastExplicitVoucher(t *testing.T) {
	highest := int64(0)
	g := NewLocalGenerator(func(ctx context.Context, prefix string) (int64, error) {
		return highest, nil
	})
	ctx := context.Background()

	n, err := g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// PZ-20250115-0007 was saved with an explicit number
	highest = 7
	n, err = g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
}

func TestLocalGenerator_ConcurrentCallsAreDistinct(t *testing.T) {
	g := NewLocalGenerator(nil)
	ctx := context.Background()

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := g.Next(ctx, "PZ-20250115-")
			assert.NoError(t, err)
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
	assert.True(t, seen[1])
	assert.True(t, seen[50])
}

func TestLocalGenerator_SeedErrorDoesNotAdvance(t *testing.T) {
	boom := errors.New("scan failed")
	g := NewLocalGenerator(func(ctx context.Context, prefix string) (int64, error) {
		return 0, boom
	})

	_, err := g.Next(context.Background(), "PZ-20250115-")
	assert.ErrorIs(t, err, boom)
}

func TestRedisGenerator_Next(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	g := NewRedisGenerator(client, fixedSeed(3))
	ctx := context.Background()

	n, err := g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	stored, err := mr.Get("voucher-seq:PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, "5", stored)
}

func TestRedisGenerator_StaleSeedDoesNotRewind(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	first := NewRedisGenerator(client, fixedSeed(0))
	n, err := first.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// A second process with a stale seed continues the shared counter
	second := NewRedisGenerator(client, fixedSeed(0))
	n, err = second.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRedisGenerator_JumpsPastExplicitVoucher(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	highest := int64(0)
	g := NewRedisGenerator(client, func(ctx context.Context, prefix string) (int64, error) {
		return highest, nil
	})

	n, err := g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	highest = 2
	n, err = g.Next(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	stored, err := mr.Get("voucher-seq:PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, "3", stored)
}

func TestFunc(t *testing.T) {
	var g Generator = Func(func(ctx context.Context, prefix string) (int64, error) {
		return 9, nil
	})
	n, err := g.Next(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}
