package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-site/models"

	"github.com/gin-gonic/gin"
)

func newRouter(j *JWT, roles ...models.AdminRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{j.AuthRequired()}
	if len(roles) > 0 {
		chain = append(chain, RoleRequired(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, GetUsername(c)+"/"+GetAdminID(c))
	})
	r.GET("/secret", chain...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	j := NewJWT([]byte("test-secret"), time.Hour)
	token, expires, err := j.GenerateToken(models.AdminUser{ID: "7", Username: "garson", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expiry in the past: %v", expires)
	}

	r := newRouter(j)
	if w := get(r, token); w.Code != http.StatusOK || w.Body.String() != "garson/7" {
		t.Fatalf("valid token: %d %s", w.Code, w.Body.String())
	}
	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: %d", w.Code)
	}
	if w := get(r, token+"x"); w.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: %d", w.Code)
	}

	other := NewJWT([]byte("other-secret"), time.Hour)
	foreign, _, _ := other.GenerateToken(models.AdminUser{ID: "1", Username: "admin", Role: models.RoleSuper})
	if w := get(r, foreign); w.Code != http.StatusUnauthorized {
		t.Fatalf("foreign token: %d", w.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	j := NewJWT([]byte("test-secret"), time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	j.now = func() time.Time { return issued }
	token, _, _ := j.GenerateToken(models.AdminUser{ID: "1", Username: "admin", Role: models.RoleSuper})
	j.now = time.Now

	if w := get(newRouter(j), token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: %d", w.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	j := NewJWT([]byte("test-secret"), time.Hour)
	r := newRouter(j, models.RoleSuper)

	admin, _, _ := j.GenerateToken(models.AdminUser{ID: "2", Username: "garson", Role: models.RoleAdmin})
	if w := get(r, admin); w.Code != http.StatusForbidden {
		t.Fatalf("admin on super route: %d", w.Code)
	}
	super, _, _ := j.GenerateToken(models.AdminUser{ID: "1", Username: "admin", Role: models.RoleSuper})
	if w := get(r, super); w.Code != http.StatusOK {
		t.Fatalf("super on super route: %d", w.Code)
	}
}
