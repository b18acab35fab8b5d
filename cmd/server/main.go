package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/gamefinder/gamefinder/internal/authstate"
	"github.com/gamefinder/gamefinder/internal/config"
	"github.com/gamefinder/gamefinder/internal/db"
	"github.com/gamefinder/gamefinder/internal/handler"
	"github.com/gamefinder/gamefinder/internal/oauth"
	"github.com/gamefinder/gamefinder/internal/repository"
	"github.com/gamefinder/gamefinder/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	conn, err := sqlx.Connect("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer conn.Close()

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Migrate(conn.DB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	slog.Info("database ready")

	states, err := newStateStore(cfg)
	if err != nil {
		return err
	}

	providers := oauth.NewRegistry()
	providers.Register(oauth.NewGoogleProvider(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURI,
	))

	userRepo := repository.NewUserRepository(conn)
	venueRepo := repository.NewVenueRepository(conn)
	gameRepo := repository.NewGameRepository(conn)
	sportRepo := repository.NewSportRepository(conn)
	reportRepo := repository.NewReportRepository(conn)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenLifetime)
	authSvc := service.NewAuthService(userRepo, providers, states, tokens)
	venueSvc := service.NewVenueService(venueRepo)
	gameSvc := service.NewGameService(gameRepo)
	reportSvc := service.NewReportService(reportRepo)

	cookies := handler.CookieConfig{
		Domain:   cfg.CookieDomain,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cfg.TokenLifetime,
	}
	if cfg.IsProduction() {
		// Cross-site frontend: SameSite=None requires Secure.
		cookies.SameSite = http.SameSiteNoneMode
	}

	authHandler := handler.NewAuthHandler(authSvc, cookies, cfg.FrontendURL)
	venueHandler := handler.NewVenueHandler(venueSvc)
	gameHandler := handler.NewGameHandler(gameSvc)
	sportHandler := handler.NewSportHandler(sportRepo)
	reportHandler := handler.NewReportHandler(reportSvc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewAppValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomw.RequestID())
	e.Use(handler.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(handler.Session(authSvc, tokens, cookies))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/auth/:provider", authHandler.Login)
	e.GET("/auth/:provider/callback", authHandler.Callback)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, handler.RequireAuth)

	api := e.Group("/api/v1")
	api.GET("/sports", sportHandler.List)
	api.GET("/venues", venueHandler.List)
	api.GET("/venues/:id", venueHandler.Get)
	api.POST("/venues", venueHandler.Create, handler.RequireAuth)
	api.GET("/games", gameHandler.List)
	api.GET("/games/:id", gameHandler.Get)
	api.POST("/games", gameHandler.Create, handler.RequireAuth)
	api.POST("/games/:id/join", gameHandler.Join, handler.RequireAuth)
	api.POST("/reports", reportHandler.Create, handler.RequireAuth)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		errCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newStateStore picks the pending-login store: redis when configured (so
// logins survive restarts and work across instances), in-process otherwise.
func newStateStore(cfg config.Config) (authstate.Store, error) {
	if cfg.RedisAddr == "" {
		slog.Info("using in-memory login state store")
		return authstate.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	slog.Info("using redis login state store", "addr", cfg.RedisAddr)
	return authstate.NewRedisStore(client), nil
}
