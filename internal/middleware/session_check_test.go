package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	users map[string]string
}

func (s *stubValidator) Validate(_ context.Context, token string) (string, bool, error) {
	uid, ok := s.users[token]
	return uid, ok, nil
}

func protectedRouter(v SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(v))
	router.GET("/journals", func(c *gin.Context) {
		c.String(http.StatusOK, "uid="+c.GetString("uid"))
	})
	return router
}

func TestSessionMiddlewareValidCookie(t *testing.T) {
	router := protectedRouter(&stubValidator{users: map[string]string{"tok1": "alice"}})

	req := httptest.NewRequest(http.MethodGet, "/journals", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid=alice", rec.Body.String())
}

// browsers get bounced to the login page
func TestSessionMiddlewareRedirectsBrowsers(t *testing.T) {
	router := protectedRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/journals", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionMiddlewareUnknownToken(t *testing.T) {
	router := protectedRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/journals", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
