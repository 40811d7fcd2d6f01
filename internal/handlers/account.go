package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, fullName, email, password, confirmation string) (*models.AccountDB, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.AccountDB, error)
}

// ProfileUpdater updates the profile of the authenticated account.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id int64, profile models.AccountProfile) (*models.AccountDB, error)
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: John Doe
	FullName string `json:"full_name"`

	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// required: true
	// default: secret123
	Password string `json:"password"`

	// required: true
	// default: secret123
	PasswordConfirmation string `json:"password_confirmation"`
}

// AccountResponse is the public view of a host or client
// swagger:model AccountResponse
type AccountResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newAccountResponse(a *models.AccountDB) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// ProfileResponse is the account with its profile fields
// swagger:model ProfileResponse
type ProfileResponse struct {
	AccountResponse
	Bio          *string   `json:"bio"`
	FunFact      *string   `json:"fun_fact,omitempty"`
	MobileNumber *string   `json:"mobile_number"`
	IDNumber     *string   `json:"id_number"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newProfileResponse(a *models.AccountDB) ProfileResponse {
	return ProfileResponse{
		AccountResponse: *newAccountResponse(a),
		Bio:             a.Bio,
		FunFact:         a.FunFact,
		MobileNumber:    a.MobileNumber,
		IDNumber:        a.IDNumber,
		UpdatedAt:       a.UpdatedAt,
	}
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse carries the access token and the logged in account under
// the key of its role.
// swagger:model LoginResponse
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Host        *AccountResponse `json:"host,omitempty"`
	Client      *AccountResponse `json:"client,omitempty"`
}

// ProfileRequest holds the profile fields to change; omitted fields are kept
// swagger:model ProfileRequest
type ProfileRequest struct {
	Bio          *string `json:"bio"`
	FunFact      *string `json:"fun_fact"`
	MobileNumber *string `json:"mobile_number"`
	IDNumber     *string `json:"id_number"`
}

// NewRegisterHandler returns an HTTP handler registering accounts of the given role.
// @Summary Register a host or client
// @Description Creates an account. The email must be unique per role; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.AccountResponse
// @Failure 409 {object} middlewares.ErrorResponse "Email already registered"
// @Failure 422 {object} middlewares.ErrorResponse "Validation error"
// @Router /host/auth/register [post]
// @Router /client/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		account, err := svc.Register(r.Context(), req.FullName, req.Email, req.Password, req.PasswordConfirmation)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newAccountResponse(account))
	}
}

// NewLoginHandler returns an HTTP handler issuing tokens for the given role.
// @Summary Log in as host or client
// @Description Authenticates by email and password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse
// @Failure 401 {object} middlewares.ErrorResponse "Incorrect email or password"
// @Failure 429 {object} middlewares.ErrorResponse "Too many requests"
// @Router /host/auth/login [post]
// @Router /client/auth/login [post]
func NewLoginHandler(role models.Role, svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		token, account, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := LoginResponse{AccessToken: token, TokenType: "bearer"}
		if role == models.RoleClient {
			resp.Client = newAccountResponse(account)
		} else {
			resp.Host = newAccountResponse(account)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewLogoutHandler returns an HTTP handler acknowledging a logout. Tokens are
// stateless, so the client just discards its token.
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Router /host/auth/logout [post]
// @Router /client/auth/logout [post]
func NewLogoutHandler(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentAccount(w, r, role); !ok {
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Successfully logged out"})
	}
}

// NewMeHandler returns the authenticated account.
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Failure 403 {object} middlewares.ErrorResponse
// @Router /host/me [get]
// @Router /client/me [get]
func NewMeHandler(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := currentAccount(w, r, role)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, newProfileResponse(account))
	}
}

// NewUpdateProfileHandler returns an HTTP handler updating the caller's profile.
// @Summary Update current account profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileRequest body handlers.ProfileRequest true "Profile fields"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} middlewares.ErrorResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Router /host/me [put]
// @Router /client/me [put]
func NewUpdateProfileHandler(role models.Role, svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := currentAccount(w, r, role)
		if !ok {
			return
		}

		var req ProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), account.ID, models.AccountProfile{
			Bio:          req.Bio,
			FunFact:      req.FunFact,
			MobileNumber: req.MobileNumber,
			IDNumber:     req.IDNumber,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newProfileResponse(updated))
	}
}
