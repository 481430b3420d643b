package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/api/metrics"
	"github.com/playschool-a2z/management-api/internal/core/auth"
	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

const (
	principalKey = "auth.principal"
	claimsKey    = "auth.claims"
)

// Authenticate builds the request authenticator middleware. It runs before
// any route logic and never rejects a request itself: a missing, malformed,
// expired, revoked, or orphaned token simply leaves the request anonymous,
// and the role gates downstream decide whether anonymous access is allowed.
//
// On a valid token the principal's roles come from a live user lookup, not
// from the token, so role revocations apply on the very next request.
func Authenticate(tokens *auth.TokenService, users ports.UserRepository, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			claims, err := tokens.Validate(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				log.Debug().Err(err).Msg("bearer token rejected")
				return next(c)
			}

			ctx := c.Request().Context()

			revoked, err := denylist.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				// Denylist outage: proceed with signature-based validity
				// rather than failing every authenticated request.
				log.Warn().Err(err).Msg("denylist check failed, skipping")
			} else if revoked {
				metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
				log.Debug().Str("subject", claims.Subject).Msg("revoked token presented")
				return next(c)
			}

			user, err := users.FindByUsername(ctx, claims.Subject)
			if err != nil {
				// A validated token whose subject no longer exists is
				// equivalent to no identity.
				if !errors.Is(err, domain.ErrUserNotFound) {
					log.Warn().Err(err).Str("subject", claims.Subject).Msg("subject lookup failed")
				}
				metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
				return next(c)
			}

			c.Set(principalKey, &domain.Principal{
				UserID:   user.ID,
				Username: user.Username,
				Roles:    user.Roles,
			})
			c.Set(claimsKey, claims)

			return next(c)
		}
	}
}

// Principal returns the authenticated identity attached to the request, or
// nil when the request is anonymous.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// Claims returns the validated token claims for an authenticated request,
// or nil when the request is anonymous.
func Claims(c echo.Context) *auth.TokenClaims {
	claims, _ := c.Get(claimsKey).(*auth.TokenClaims)
	return claims
}

// bearerToken extracts the token from an Authorization header. A missing
// header or a non-Bearer scheme yields ok=false, not an error.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
