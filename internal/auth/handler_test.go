package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lunblog/internal/session"
)

func authRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/auth"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint_Success(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := authRouter(svc)

	w := postLogin(r, `{"email":"admin@x.com","password":"Sup3rSecret!!!"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var response struct {
		Success bool           `json:"success"`
		User    map[string]any `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success {
		t.Error("Expected success true")
	}
	if response.User["email"] != "admin@x.com" {
		t.Errorf("Expected user email admin@x.com, got %v", response.User["email"])
	}
	if _, leaked := response.User["password_hash"]; leaked {
		t.Error("Expected no password hash in login response")
	}

	cookie := findSessionCookie(t, w.Result().Cookies())
	if cookie.Value == "" {
		t.Fatal("Expected session cookie to carry the session ID")
	}
	if !cookie.HttpOnly {
		t.Error("Expected session cookie to be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("Expected SameSite=Strict, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Errorf("Expected cookie path /, got %s", cookie.Path)
	}
	if cookie.MaxAge != int(session.Duration.Seconds()) {
		t.Errorf("Expected cookie max age %d, got %d", int(session.Duration.Seconds()), cookie.MaxAge)
	}
}

func TestLoginEndpoint_InvalidCredentialsSameMessage(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := authRouter(svc)

	unknown := postLogin(r, `{"email":"nobody@x.com","password":"Sup3rSecret!!!"}`)
	wrong := postLogin(r, `{"email":"admin@x.com","password":"wrong"}`)

	for name, w := range map[string]*httptest.ResponseRecorder{"unknown email": unknown, "wrong password": wrong} {
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401, got %d", name, w.Code)
		}
	}

	var unknownBody, wrongBody map[string]string
	if err := json.NewDecoder(unknown.Body).Decode(&unknownBody); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if err := json.NewDecoder(wrong.Body).Decode(&wrongBody); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if unknownBody["error"] != "Invalid email or password" {
		t.Errorf("Expected generic credentials error, got %q", unknownBody["error"])
	}
	if unknownBody["error"] != wrongBody["error"] {
		t.Errorf("Expected identical error messages, got %q vs %q",
			unknownBody["error"], wrongBody["error"])
	}
}

func TestSessionEndpoint_AfterLogin(t *testing.T) {
	svc, users, store := newTestService(t)
	r := authRouter(svc)

	w := postLogin(r, `{"email":"admin@x.com","password":"Sup3rSecret!!!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d", w.Code)
	}
	cookie := findSessionCookie(t, w.Result().Cookies())
	store.sessions[cookie.Value].UserEmail = "admin@x.com"

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	sessionW := httptest.NewRecorder()
	r.ServeHTTP(sessionW, req)

	if sessionW.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", sessionW.Code)
	}

	var response struct {
		User PublicUser `json:"user"`
	}
	if err := json.NewDecoder(sessionW.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.User.ID != users.users["admin@x.com"].ID {
		t.Errorf("Expected session to resolve to the logged-in user")
	}
}

func TestSessionEndpoint_NoCookie(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := authRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without a cookie, got %d", w.Code)
	}
}

func TestLogoutEndpoint_AlwaysSucceedsAndClearsCookie(t *testing.T) {
	svc, _, store := newTestService(t)
	r := authRouter(svc)

	w := postLogin(r, `{"email":"admin@x.com","password":"Sup3rSecret!!!"}`)
	cookie := findSessionCookie(t, w.Result().Cookies())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	logoutW := httptest.NewRecorder()
	r.ServeHTTP(logoutW, req)

	if logoutW.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", logoutW.Code)
	}
	if _, ok := store.sessions[cookie.Value]; ok {
		t.Error("Expected session to be deleted on logout")
	}

	cleared := findSessionCookie(t, logoutW.Result().Cookies())
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("Expected cookie to be cleared, got value=%q maxAge=%d", cleared.Value, cleared.MaxAge)
	}

	// Logging out without a session is still a success.
	repeatW := httptest.NewRecorder()
	r.ServeHTTP(repeatW, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if repeatW.Code != http.StatusOK {
		t.Errorf("Expected status 200 for logout without a session, got %d", repeatW.Code)
	}
}

func findSessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, cookie := range cookies {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("Expected a session cookie in the response")
	return nil
}
