package token

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestMain puts gin into test mode before the middleware tests run.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestAuthRequired_MissingToken verifies that requests without a usable token
// are rejected with 401.
func TestAuthRequired_MissingToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			AuthRequired(codec)(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_ValidToken verifies that the verified identity lands in
// the gin context, via either token header.
func TestAuthRequired_ValidToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	tokenStr, err := codec.Issue(7, "ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"authorization bearer", "Authorization", "Bearer " + tokenStr},
		{"x-auth-token", "X-Auth-Token", tokenStr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set(tt.header, tt.value)

			AuthRequired(codec)(c)

			if c.IsAborted() {
				t.Fatalf("expected request to pass, got status %d", w.Code)
			}
			if got := c.GetUint(ContextUserID); got != 7 {
				t.Errorf("expected user id 7 in context, got %d", got)
			}
			if got := c.GetString(ContextUsername); got != "ana" {
				t.Errorf("expected username %q in context, got %q", "ana", got)
			}
		})
	}
}

// TestIdentity_AnonymousPassThrough verifies that the optional identity
// middleware lets tokenless requests through without setting an identity.
func TestIdentity_AnonymousPassThrough(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	Identity(codec)(c)

	if c.IsAborted() {
		t.Fatal("expected anonymous request to pass")
	}
	if _, ok := c.Get(ContextUserID); ok {
		t.Error("expected no identity in context")
	}
}

// TestIdentity_BadTokenRejected verifies that a present-but-invalid token is
// a hard 401 instead of a silent fall back to anonymous.
func TestIdentity_BadTokenRejected(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	other := NewCodec("other-secret", time.Hour)
	forged, err := other.Issue(7, "mallory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			Identity(codec)(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestIdentity_ValidTokenSetsIdentity verifies that a valid token populates
// the context identity used to override body-supplied ids.
func TestIdentity_ValidTokenSetsIdentity(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	tokenStr, err := codec.Issue(3, "ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("X-Auth-Token", tokenStr)

	Identity(codec)(c)

	if c.IsAborted() {
		t.Fatalf("expected request to pass, got status %d", w.Code)
	}
	if got := c.GetUint(ContextUserID); got != 3 {
		t.Errorf("expected user id 3 in context, got %d", got)
	}
}
