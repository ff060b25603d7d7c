package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/webinfo-api/internal/domain"
	"github.com/vfg2006/webinfo-api/internal/usecases/authenticating"
)

// fakeAuthenticator valida apenas o token fixo "valid-token"
type fakeAuthenticator struct{}

func (fakeAuthenticator) LoginUser(email, password string) (string, error) {
	return "", authenticating.ErrInvalidCredentials
}

func (fakeAuthenticator) GetUserProfile(userID int) (*domain.User, error) {
	return nil, authenticating.ErrUserNotFound
}

func (fakeAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString != "valid-token" {
		return nil, authenticating.ErrInvalidToken
	}
	return &domain.Claims{UserID: 42, UserRoleID: RoleAdmin}, nil
}

func TestAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
		if ok {
			assert.Equal(t, 42, claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(fakeAuthenticator{})(next)

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Rota pública passa sem token",
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Login passa sem token",
			path:       "/v1/auth/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota protegida sem header é rejeitada",
			path:       "/v1/domains",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem prefixo Bearer é rejeitado",
			path:       "/v1/domains",
			authHeader: "valid-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token inválido é rejeitado",
			path:       "/v1/domains",
			authHeader: "Bearer forged-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido passa com claims no contexto",
			path:       "/v1/domains",
			authHeader: "Bearer valid-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
