package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-car-rental/internal/jwt"
	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// TokenExtractor pulls the bearer token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to an account of its role.
type Authenticator interface {
	Role() models.Role
	Authenticate(ctx context.Context, token string) (*models.AccountDB, error)
}

type accountKey struct {
	role models.Role
}

// WithAccount stores the authenticated account of the given role in ctx.
func WithAccount(ctx context.Context, role models.Role, account *models.AccountDB) context.Context {
	return context.WithValue(ctx, accountKey{role: role}, account)
}

// GetAccountFromContext returns the account stored by the guard of the given role.
func GetAccountFromContext(ctx context.Context, role models.Role) (*models.AccountDB, bool) {
	account, ok := ctx.Value(accountKey{role: role}).(*models.AccountDB)
	return account, ok && account != nil
}

// AuthMiddleware returns a guard that only lets through requests carrying a
// valid token of the authenticator's role. The resolved account is put in
// the request context.
func AuthMiddleware(extractor TokenExtractor, auth Authenticator) func(http.Handler) http.Handler {
	role := auth.Role()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "role", role, "err", err)
				WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			account, err := auth.Authenticate(ctx, token)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "role", role, "err", err)
				switch {
				case errors.Is(err, services.ErrWrongRole):
					WriteDetail(w, http.StatusForbidden, fmt.Sprintf("This endpoint requires %s authentication", role))
				case errors.Is(err, jwt.ErrTokenExpired):
					WriteDetail(w, http.StatusUnauthorized, "Token has expired")
				case errors.Is(err, services.ErrPrincipalNotFound):
					WriteDetail(w, http.StatusUnauthorized, principalNotFound(role))
				case errors.Is(err, services.ErrUnauthenticated):
					WriteDetail(w, http.StatusUnauthorized, "Could not validate credentials")
				default:
					logger.FromContext(ctx).Errorw("authentication error", "role", role, "err", err)
					WriteDetail(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(ctx, role, account)))
		})
	}
}

func principalNotFound(role models.Role) string {
	if role == models.RoleClient {
		return "Client not found"
	}
	return "Host not found"
}
