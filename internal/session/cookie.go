package session

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the session identifier.
const CookieName = "session_id"

// IssueCookie sets the session cookie on the response. The cookie is
// HTTP-only, SameSite=Strict, scoped to the whole site, and marked Secure
// when running in production.
func IssueCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, sessionID, int(Duration.Seconds()), "/", "", secureCookies(), true)
}

// ReadCookie extracts the session ID from the inbound request. A missing
// cookie is reported as absent, not as an error.
func ReadCookie(c *gin.Context) (string, bool) {
	sessionID, err := c.Cookie(CookieName)
	if err != nil || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}
