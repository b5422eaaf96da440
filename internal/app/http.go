package app

import (
	"context"

	"portfolio/internal/auth/credentials"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/middleware"
	"portfolio/internal/upload"
	"portfolio/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	verifier := credentials.NewService(infra.Directory)
	contentStore := content.NewStore()

	ingestor, err := upload.NewIngestor(cfg.MediaRoot)
	if err != nil {
		return nil, nil, err
	}

	handler := web.NewHandler(
		verifier,
		infra.SessionStore,
		contentStore,
		ingestor,
		cfg.SessionTTL,
	)

	authMiddleware := middleware.NewAuthMiddleware(infra.SessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = 8 << 20
	router.SetHTMLTemplate(web.Templates())
	router.Use(authMiddleware.LoadSession())

	router.Static(upload.PublicPrefix, cfg.MediaRoot)

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/", handler.Home)
	router.GET("/login", handler.LoginForm)
	router.POST("/login", handler.Login)
	router.GET("/logout", handler.Logout)
	router.GET("/clear-session", handler.ClearSession)

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(authMiddleware.RequireAuth())

	protected.POST("/add-experience", handler.AddExperience)
	protected.POST("/add-project", handler.AddProject)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.Close, nil
}
