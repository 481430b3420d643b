package ports

import (
	"context"
	"time"
)

// TokenDenylist tracks revoked token IDs until their natural expiry. Signing
// out stores the token's jti with a TTL equal to its remaining validity, so
// the denylist never grows beyond the set of still-unexpired revoked tokens.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
