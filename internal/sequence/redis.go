package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

const redisKeyPrefix = "voucher-seq:"

// RedisGenerator increments a shared counter per prefix, so several
// processes can number vouchers without colliding. The counter is raised
// to the highest voucher in the store before each increment.
type RedisGenerator struct {
	client *redis.Client
	seed   Seeder
}

func NewRedisGenerator(client *redis.Client, seed Seeder) *RedisGenerator {
	return &RedisGenerator{client: client, seed: seed}
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("sequence: ping redis: %w", err)
	}
	return client, nil
}

// nextScript raises the counter to at least ARGV[1] and increments it
var nextScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local highest = tonumber(ARGV[1])
if highest > current then
	current = highest
end
current = current + 1
redis.call('SET', KEYS[1], string.format('%d', current))
return current
`)

func (g *RedisGenerator) Next(ctx context.Context, prefix string) (int64, error) {
	var highest int64
	if g.seed != nil {
		var err error
		if highest, err = g.seed(ctx, prefix); err != nil {
			return 0, err
		}
	}

	next, err := nextScript.Run(ctx, g.client, []string{redisKeyPrefix + prefix}, highest).Int64()
	if err != nil {
		logger.GetLogger().WithError(err).WithField("prefix", prefix).Error("Failed to increment voucher sequence")
		return 0, domain.NewPersistenceError("increment voucher sequence", err)
	}
	return next, nil
}
