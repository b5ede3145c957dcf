// Package sequence allocates the numeric suffix of voucher numbers.
package sequence

import (
	"context"
	"fmt"
	"time"

	"ledger-recon/internal/domain"
)

// Generator hands out strictly increasing numbers per prefix.
type Generator interface {
	Next(ctx context.Context, prefix string) (int64, error)
}

// Seeder reports the highest number already in use for prefix.
type Seeder func(ctx context.Context, prefix string) (int64, error)

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, prefix string) (int64, error)

func (f Func) Next(ctx context.Context, prefix string) (int64, error) {
	return f(ctx, prefix)
}

// VoucherPrefix returns the per-day prefix, e.g. "PZ-20250115-".
func VoucherPrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s-", domain.VoucherPrefix, day.Format("20060102"))
}

// VoucherNumber formats a voucher number such as "PZ-20250115-0001".
func VoucherNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("%s%04d", VoucherPrefix(day), seq)
}
