package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
)

type claimsKey struct{}

// bearerPrefix is the expected Authorization scheme.
const bearerPrefix = "Bearer "

// Authenticate returns middleware that requires a valid Bearer access token
// on every request. The verified claims are stored in the request context
// for ClaimsFromContext and RequireRole. Requests without a valid token get
// a 401 problem response.
func Authenticate(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := bearerClaims(r, tokens)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that rejects authenticated requests whose
// role is not in the allowed set. Must be registered inside a route group
// wrapped by Authenticate.
func RequireRole(allowed ...identity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("not authenticated: %w", domain.ErrUnauthorized))
				return
			}

			for _, role := range allowed {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			dto.WriteErrorResponse(w, r, fmt.Errorf("role %q may not access this resource: %w", claims.Role, domain.ErrForbidden))
		})
	}
}

// ClaimsFromContext returns the access token claims stored by Authenticate.
// ok is false when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return claims, ok
}

// bearerClaims extracts and verifies the Authorization header's token.
func bearerClaims(r *http.Request, tokens *token.Manager) (*token.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing Authorization header: %w", domain.ErrUnauthorized)
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, fmt.Errorf("Authorization header is not a bearer token: %w", domain.ErrUnauthorized)
	}
	return tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
}
