package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", Auth(testSecret))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": GetUserID(c),
			"email":  GetUserEmail(c),
			"role":   GetUserRole(c),
		})
	})
	return r
}

func probe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter()
	if w := probe(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsWrongSignature(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, []byte("other-secret"), jwt.MapClaims{"user_id": 1.0, "exp": time.Now().Add(time.Hour).Unix()})
	if w := probe(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, testSecret, jwt.MapClaims{"user_id": 1.0, "exp": time.Now().Add(-time.Hour).Unix()})
	if w := probe(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthStoresClaims(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": float64(42),
		"email":   "claims@example.com",
		"role":    "customer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := probe(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"userId":42`, `"email":"claims@example.com"`, `"role":"customer"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("response %s misses %s", body, want)
		}
	}
}

func TestRequireRoles(t *testing.T) {
	adminOnly := newAuthRouter("admin")

	asCustomer := signToken(t, testSecret, jwt.MapClaims{"user_id": 1.0, "role": "customer", "exp": time.Now().Add(time.Hour).Unix()})
	if w := probe(adminOnly, asCustomer); w.Code != http.StatusForbidden {
		t.Fatalf("customer against admin route: status = %d, want 403", w.Code)
	}

	asAdmin := signToken(t, testSecret, jwt.MapClaims{"user_id": 1.0, "role": "Admin", "exp": time.Now().Add(time.Hour).Unix()})
	if w := probe(adminOnly, asAdmin); w.Code != http.StatusOK {
		t.Fatalf("role matching must be case-insensitive: status = %d, want 200", w.Code)
	}

	noRole := signToken(t, testSecret, jwt.MapClaims{"user_id": 1.0, "exp": time.Now().Add(time.Hour).Unix()})
	if w := probe(adminOnly, noRole); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing role claim: status = %d, want 401", w.Code)
	}
}
