package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sequence keys live for two days: long enough to survive a restart on the
// same day, short enough to self-clean.
const sequenceTTL = 48 * time.Hour

// InvoiceSequence allocates monotonically increasing invoice numbers per
// calendar day, backed by Redis INCR. Key format: invoice_seq:<yyyymmdd>.
type InvoiceSequence struct {
	client *redis.Client
}

// NewInvoiceSequence creates an InvoiceSequence wrapping the given client.
func NewInvoiceSequence(client *redis.Client) *InvoiceSequence {
	return &InvoiceSequence{client: client}
}

// Next returns the next sequence number for the given day, starting at 1.
func (s *InvoiceSequence) Next(ctx context.Context, day time.Time) (int64, error) {
	key := s.key(day)
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("invoice sequence: %w", err)
	}
	if n == 1 {
		// First allocation of the day sets the expiry.
		_ = s.client.Expire(ctx, key, sequenceTTL).Err()
	}
	return n, nil
}

func (s *InvoiceSequence) key(day time.Time) string {
	return "invoice_seq:" + day.UTC().Format("20060102")
}
