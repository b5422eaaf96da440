package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, store session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewAuthMiddleware(store)

	router := gin.New()
	router.Use(mw.LoadSession())

	protected := router.Group("/")
	protected.Use(mw.RequireAuth())
	protected.POST("/add", func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, sess.Email)
	})

	return router
}

func createSession(t *testing.T, store session.Store, ttl time.Duration) string {
	t.Helper()
	id, err := session.GenerateID()
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: id,
		UserID:    "u-1",
		Email:     "a@b.com",
		Name:      "Owner",
		ExpiresAt: time.Now().Add(ttl),
	}))
	return id
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	router := newTestRouter(t, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	router := newTestRouter(t, store)
	id := createSession(t, store, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", rec.Body.String())
}

func TestRequireAuthRejectsStaleCookie(t *testing.T) {
	store := session.NewMemoryStore()
	router := newTestRouter(t, store)
	id := createSession(t, store, time.Hour)
	require.NoError(t, store.Delete(context.Background(), id))

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthRejectsExpiredSession(t *testing.T) {
	store := session.NewMemoryStore()
	router := newTestRouter(t, store)
	id := createSession(t, store, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}
