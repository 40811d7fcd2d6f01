package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

// DefaultExpiration is the token lifetime used when none is configured.
const DefaultExpiration = 30 * time.Minute

var (
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenMalformed      = errors.New("token is malformed")
	ErrTokenSubjectInvalid = errors.New("token subject is not a valid id")

	ErrAuthHeaderMissing = errors.New("authorization header missing")
	ErrAuthHeaderInvalid = errors.New("invalid authorization header format")
)

// Claims is the verified content of a token.
type Claims struct {
	PrincipalID int64
	Role        models.Role
}

// tokenClaims is the wire form: sub, role, exp, iat.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 tokens tagged with a role.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the shared signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the lifetime of issued tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock replaces time.Now for issuing and verification.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate issues a token for the principal using the configured lifetime.
func (j *JWT) Generate(ctx context.Context, principalID int64, role models.Role) (string, error) {
	return j.GenerateWithTTL(ctx, principalID, role, j.exp)
}

// GenerateWithTTL issues a token that expires ttl from now.
func (j *JWT) GenerateWithTTL(ctx context.Context, principalID int64, role models.Role, ttl time.Duration) (string, error) {
	now := j.now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principalID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims verifies the token and returns its principal and role.
// Errors are one of ErrTokenExpired, ErrTokenMalformed or ErrTokenSubjectInvalid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrTokenMalformed)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrTokenMalformed)
	}

	principalID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrTokenSubjectInvalid
	}

	return &Claims{
		PrincipalID: principalID,
		Role:        models.Role(claims.Role),
	}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrAuthHeaderMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrAuthHeaderInvalid
	}

	return parts[1], nil
}
