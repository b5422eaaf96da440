package web

import (
	"errors"
	"net/http"
	"time"

	"portfolio/internal/auth/credentials"
	"portfolio/internal/content"
	"portfolio/internal/logger"
	"portfolio/internal/middleware"
	"portfolio/internal/session"
	"portfolio/internal/upload"

	"github.com/gin-gonic/gin"
)

// Handler serves the site: public home and login pages plus the
// session-gated content mutations.
type Handler struct {
	verifier     *credentials.Service
	sessionStore session.Store
	store        *content.Store
	ingestor     *upload.Ingestor
	sessionTTL   time.Duration
}

func NewHandler(
	verifier *credentials.Service,
	sessionStore session.Store,
	store *content.Store,
	ingestor *upload.Ingestor,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		verifier:     verifier,
		sessionStore: sessionStore,
		store:        store,
		ingestor:     ingestor,
		sessionTTL:   sessionTTL,
	}
}

func (h *Handler) Home(c *gin.Context) {
	var user *session.Session
	if sess, ok := middleware.SessionFromContext(c); ok {
		user = sess
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":       "Portfolio",
		"User":        user,
		"Experiences": h.store.Experiences(),
		"Projects":    h.store.Projects(),
	})
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
	})
}

// Login verifies the submitted credentials and establishes a session.
// Failures answer plain text without redirecting; "no such user" and
// "wrong password" stay distinguishable.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.verifier.Verify(c.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrUserNotFound):
			c.String(http.StatusUnauthorized, "User not found")
		case errors.Is(err, credentials.ErrInvalidCredentials):
			c.String(http.StatusUnauthorized, "Invalid credentials")
		default:
			c.String(http.StatusInternalServerError, "login failed")
		}
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.String(http.StatusInternalServerError, "session error")
		return
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    user.ID,
			Email:     user.Email,
			Name:      user.Name,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		c.String(http.StatusInternalServerError, "session error")
		return
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			SameSite: http.SameSiteLaxMode,
		},
	)

	logger.Info("user logged in", map[string]any{"name": user.Name})

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	h.destroySession(c)
	c.Redirect(http.StatusFound, "/")
}

// ClearSession force-clears the session regardless of state. Debug route.
func (h *Handler) ClearSession(c *gin.Context) {
	h.destroySession(c)
	c.String(http.StatusOK, "Session cleared")
}

func (h *Handler) destroySession(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}
	session.ClearCookie(c.Writer, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})
}

// AddExperience ingests the optional logo first, then prepends the entry.
// An ingestion failure aborts before the store is touched.
func (h *Handler) AddExperience(c *gin.Context) {
	logo, ok := h.ingestUpload(c, "logo")
	if !ok {
		return
	}

	h.store.AddExperience(content.Experience{
		Title:       c.PostForm("title"),
		Company:     c.PostForm("company"),
		Date:        c.PostForm("date"),
		Description: c.PostForm("description"),
		Logo:        logo,
	})

	logger.Info("experience added", map[string]any{"title": c.PostForm("title")})

	c.Redirect(http.StatusFound, "/")
}

// AddProject ingests the optional image first, then prepends the entry.
func (h *Handler) AddProject(c *gin.Context) {
	image, ok := h.ingestUpload(c, "image")
	if !ok {
		return
	}

	h.store.AddProject(content.Project{
		Title:       c.PostForm("title"),
		TechStack:   content.ParseTechStack(c.PostForm("techStack")),
		Description: c.PostForm("description"),
		Image:       image,
	})

	logger.Info("project added", map[string]any{"title": c.PostForm("title")})

	c.Redirect(http.StatusFound, "/")
}

// ingestUpload stores the named file field if present. A missing field is
// a valid outcome and yields an empty path. On failure it writes the
// response and reports false.
func (h *Handler) ingestUpload(c *gin.Context, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		c.String(http.StatusBadRequest, "invalid form")
		return "", false
	}

	path, err := h.ingestor.Ingest(fh)
	if err != nil {
		logger.Error("upload failed", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "upload failed")
		return "", false
	}
	return path, true
}
