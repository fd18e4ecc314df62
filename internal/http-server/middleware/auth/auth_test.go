package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testAdmin(role models.AdminRole) models.Admin {
	return models.Admin{
		ID:    "admin-1",
		Email: "admin@uniqer.kz",
		Role:  role,
	}
}

func protectedRouter(extra ...func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(New(slogdiscard.NewDiscardLogger(), testSecret))
	router.Use(extra...)
	router.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		claims, ok := FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(claims.Email))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("Valid token passes claims through", func(t *testing.T) {
		t.Parallel()

		token, err := NewToken(testAdmin(models.RoleManager), testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		protectedRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "admin@uniqer.kz", rr.Body.String())
	})

	t.Run("Missing header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		rr := httptest.NewRecorder()
		protectedRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authorization required")
	})

	t.Run("Wrong secret", func(t *testing.T) {
		t.Parallel()

		token, err := NewToken(testAdmin(models.RoleManager), "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		protectedRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid token")
	})

	t.Run("Expired token", func(t *testing.T) {
		t.Parallel()

		token, err := NewToken(testAdmin(models.RoleManager), testSecret, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		protectedRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	t.Run("Manager blocked from super admin route", func(t *testing.T) {
		t.Parallel()

		token, err := NewToken(testAdmin(models.RoleManager), testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		protectedRouter(RequireRole(models.RoleSuperAdmin)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "insufficient permissions")
	})

	t.Run("Super admin allowed", func(t *testing.T) {
		t.Parallel()

		token, err := NewToken(testAdmin(models.RoleSuperAdmin), testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		protectedRouter(RequireRole(models.RoleSuperAdmin)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
