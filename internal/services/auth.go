package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-car-rental/internal/jwt"
	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/repositories"
	"github.com/sbilibin2017/gw-car-rental/internal/validation"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUnauthenticated        = errors.New("could not validate credentials")
	ErrWrongRole              = errors.New("principal has the wrong role")
	ErrPrincipalNotFound      = errors.New("principal not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("incorrect email or password")
)

// AccountReader defines read-only operations for accounts of one role.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
	GetByID(ctx context.Context, id int64) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts of one role.
type AccountWriter interface {
	Save(ctx context.Context, fullName, email, passwordHash string) (*models.AccountDB, error)
	UpdateProfile(ctx context.Context, id int64, profile models.AccountProfile) (*models.AccountDB, error)
}

// Hasher hashes and verifies secrets.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Generate(ctx context.Context, principalID int64, role models.Role) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// Transactor runs fn as a single unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthService handles registration, login and token authentication for
// one role. Hosts and clients each get their own instance.
type AuthService struct {
	role   models.Role
	reader AccountReader
	writer AccountWriter
	hasher Hasher
	tokens TokenService
	tx     Transactor
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	role models.Role,
	reader AccountReader,
	writer AccountWriter,
	hasher Hasher,
	tokens TokenService,
	tx Transactor,
) *AuthService {
	return &AuthService{
		role:   role,
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
		tx:     tx,
	}
}

// Role returns the role this service authenticates.
func (svc *AuthService) Role() models.Role {
	return svc.role
}

// Register creates a new account after validating the input.
func (svc *AuthService) Register(ctx context.Context, fullName, email, password, confirmation string) (*models.AccountDB, error) {
	if err := validation.ValidateRegistration(fullName, email, password, confirmation); err != nil {
		return nil, err
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "role", svc.role, "err", err)
		return nil, err
	}

	var account *models.AccountDB
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailAlreadyRegistered
		}

		account, err = svc.writer.Save(ctx, fullName, email, hash)
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrEmailAlreadyRegistered
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			logger.FromContext(ctx).Infow("email already registered", "role", svc.role, "email", email)
		} else {
			logger.FromContext(ctx).Errorw("failed to register account", "role", svc.role, "err", err)
		}
		return nil, err
	}

	return account, nil
}

// Login checks the credentials and returns an access token with the account.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.AccountDB, error) {
	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get account", "role", svc.role, "err", err)
		return "", nil, err
	}
	if account == nil || !svc.hasher.Verify(password, account.PasswordHash) {
		logger.FromContext(ctx).Infow("invalid credentials", "role", svc.role, "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, account.ID, svc.role)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "role", svc.role, "err", err)
		return "", nil, err
	}

	return token, account, nil
}

// Authenticate resolves the account behind a bearer token. Token failures
// and missing accounts wrap ErrUnauthenticated; a token of another role
// yields ErrWrongRole.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.AccountDB, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Role != svc.role {
		return nil, ErrWrongRole
	}

	account, err := svc.reader.GetByID(ctx, claims.PrincipalID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to load principal", "role", svc.role, "id", claims.PrincipalID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrPrincipalNotFound)
	}

	return account, nil
}

// UpdateProfile changes the profile fields of the account.
func (svc *AuthService) UpdateProfile(ctx context.Context, id int64, profile models.AccountProfile) (*models.AccountDB, error) {
	if err := validation.ValidateProfile(profile); err != nil {
		return nil, err
	}
	if svc.role != models.RoleClient {
		profile.FunFact = nil
	}

	account, err := svc.writer.UpdateProfile(ctx, id, profile)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update profile", "role", svc.role, "id", id, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrPrincipalNotFound
	}
	return account, nil
}
