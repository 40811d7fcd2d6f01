package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-car-rental/internal/jwt"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
	"github.com/sbilibin2017/gw-car-rental/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	account := &models.AccountDB{ID: 7, Email: "host@example.com"}

	tests := []struct {
		name             string
		mockSetup        func(e *MockTokenExtractor, a *MockAuthenticator)
		expectedStatus   int
		expectedDetail   string
		expectChallenge  bool
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrAuthHeaderMissing)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Not authenticated",
			expectChallenge: true,
		},
		{
			name: "ExpiredToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").
					Return(nil, fmt.Errorf("%w: %w", services.ErrUnauthenticated, jwt.ErrTokenExpired))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Token has expired",
			expectChallenge: true,
		},
		{
			name: "MalformedToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").
					Return(nil, fmt.Errorf("%w: %w", services.ErrUnauthenticated, jwt.ErrTokenMalformed))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Could not validate credentials",
			expectChallenge: true,
		},
		{
			name: "PrincipalNotFound",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").
					Return(nil, fmt.Errorf("%w: %w", services.ErrUnauthenticated, services.ErrPrincipalNotFound))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Host not found",
			expectChallenge: true,
		},
		{
			name: "WrongRole",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, services.ErrWrongRole)
			},
			expectedStatus: http.StatusForbidden,
			expectedDetail: "This endpoint requires host authentication",
		},
		{
			name: "StoreError",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
		{
			name: "ValidToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				a.EXPECT().Authenticate(gomock.Any(), "tok").Return(account, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			extractor := NewMockTokenExtractor(ctrl)
			auth := NewMockAuthenticator(ctrl)
			auth.EXPECT().Role().Return(models.RoleHost)
			tt.mockSetup(extractor, auth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := GetAccountFromContext(r.Context(), models.RoleHost)
				assert.True(t, ok)
				assert.Equal(t, account, got)

				_, ok = GetAccountFromContext(r.Context(), models.RoleClient)
				assert.False(t, ok)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(extractor, auth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
			if tt.expectedDetail != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedDetail, body["detail"])
			}
		})
	}
}

func TestAuthMiddleware_ClientRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := NewMockTokenExtractor(ctrl)
	auth := NewMockAuthenticator(ctrl)
	auth.EXPECT().Role().Return(models.RoleClient)
	extractor.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
	auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, services.ErrWrongRole)

	handler := AuthMiddleware(extractor, auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "This endpoint requires client authentication")
}
