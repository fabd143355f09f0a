package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lunblog/internal/session"
)

func protectedRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", RequireAuth(svc), func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})
	return r
}

func TestRequireAuth_NoCookie(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireAuth_UnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-real-session"})
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidSession(t *testing.T) {
	svc, users, store := newTestService(t)
	r := protectedRouter(svc)

	sess, err := store.Create(t.Context(), users.users["admin@x.com"].ID)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	store.sessions[sess.ID].UserEmail = "admin@x.com"

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(store.touched) != 1 {
		t.Errorf("Expected the session to be touched once, got %v", store.touched)
	}
}

func TestRequireAuth_ExpiredSessionDeletedBeforeHandler(t *testing.T) {
	svc, users, store := newTestService(t)
	r := protectedRouter(svc)

	sess, err := store.Create(t.Context(), users.users["admin@x.com"].ID)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	store.sessions[sess.ID].ExpiresAt = time.Now().Add(-time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for expired session, got %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != sess.ID {
		t.Errorf("Expected expired session to be lazily deleted, deletions: %v", store.deleted)
	}
}
