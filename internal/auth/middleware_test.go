package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupProtected(t *testing.T, svc *TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(svc), func(c *gin.Context) {
		id := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"user": id.Username, "admin": id.IsAdmin()})
	})
	return r
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	r := setupProtected(t, NewTokenService([]byte("key"), "iss", "aud"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	r := setupProtected(t, NewTokenService([]byte("key"), "iss", "aud"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddlewarePassesIdentity(t *testing.T) {
	svc := NewTokenService([]byte("key"), "iss", "aud")
	r := setupProtected(t, svc)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if body != `{"admin":true,"user":"admin@example.com"}` {
		t.Errorf("body = %s", body)
	}
}
