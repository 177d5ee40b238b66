package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/auth/handler"
	"github.com/page-sage/page-sage/internal/auth/provider"
	"github.com/page-sage/page-sage/internal/auth/provider/discord"
	"github.com/page-sage/page-sage/internal/auth/provider/facebook"
	"github.com/page-sage/page-sage/internal/auth/provider/google"
	"github.com/page-sage/page-sage/internal/auth/token"
	"github.com/page-sage/page-sage/internal/config"
	"github.com/page-sage/page-sage/internal/middleware"
	"github.com/page-sage/page-sage/internal/session"
	"github.com/page-sage/page-sage/internal/user"
	"github.com/page-sage/page-sage/internal/web"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	tokenStore := token.NewRedisStore(infra.Redis.Client)
	userStore := user.NewPostgresStore(infra.DB)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.CallbackURL("google"),
	)
	if err != nil {
		return nil, nil, err
	}

	facebookProvider, err := facebook.New(
		cfg.FacebookClientID,
		cfg.FacebookClientSecret,
		cfg.CallbackURL("facebook"),
	)
	if err != nil {
		return nil, nil, err
	}

	discordProvider, err := discord.New(
		cfg.DiscordClientID,
		cfg.DiscordClientSecret,
		cfg.CallbackURL("discord"),
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(
		googleProvider,
		facebookProvider,
		discordProvider,
	)

	authHandler := handler.NewHandler(
		registry,
		sessionStore,
		tokenStore,
		userStore,
	)

	webHandler := web.NewHandler(cfg.SearchKey, sessionStore, userStore)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/**/*.html")

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)
	webHandler.RegisterPublicRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth(authMiddleware))

	protected.GET("/logout", authHandler.Logout)
	protected.POST("/logout", authHandler.Logout)

	webHandler.RegisterProtectedRoutes(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
