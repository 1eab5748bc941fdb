package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/locvowork/employee_roster/internal/config"
	"github.com/locvowork/employee_roster/internal/handler"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/session"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Echo     *echo.Echo
	Sessions *session.Manager
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo: e,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	// Initialize logging
	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize dependencies
	a.Sessions = session.NewManager(cfg.SESSION_TTL)
	empHandler := handler.NewEmployeeHandler(cfg.EXPORT_TEMPLATE_PATH)
	sessHandler := handler.NewSessionHandler(a.Sessions, cfg.SESSION_HEADER)

	// Register Middlewares
	a.RegisterMiddlewares(cfg.SESSION_HEADER, cfg.MAX_UPLOAD_BYTES)

	// Register Routes
	a.RegisterRoutes(empHandler, sessHandler)

	return nil
}

func (a *App) RegisterMiddlewares(sessionHeader string, maxUploadBytes int64) {
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.RequestID())
	a.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, sessionHeader},
		ExposeHeaders: []string{sessionHeader, echo.HeaderXRequestID},
	}))
	if maxUploadBytes > 0 {
		a.Echo.Use(middleware.BodyLimit(strconv.FormatInt(maxUploadBytes, 10) + "B"))
	}
	a.Echo.Use(a.Sessions.Middleware(sessionHeader))
	a.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := zerolog.Ctx(c.Request().Context())
			event := l.Info()
			if v.Error != nil {
				event = l.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler, sessHandler *handler.SessionHandler) {
	employees := a.Echo.Group("/employees")
	employees.POST("", empHandler.CreateHandler)
	employees.GET("", empHandler.ListHandler)
	employees.GET("/exited", empHandler.ListExitedHandler)
	employees.GET("/filter", empHandler.FilterHandler)
	employees.GET("/sorted", empHandler.SortHandler)
	employees.GET("/:id", empHandler.GetHandler)
	employees.PUT("/:id", empHandler.UpdateHandler)
	employees.DELETE("/:id", empHandler.DeleteHandler)
	employees.POST("/:id/promote", empHandler.PromoteHandler)
	employees.POST("/:id/exit", empHandler.ExitHandler)

	employees.POST("/import", empHandler.ImportHandler)
	employees.POST("/import/preview", empHandler.PreviewImportHandler)
	employees.GET("/export", empHandler.ExportHandler)
	employees.GET("/exited/export", empHandler.ExportExitedHandler)

	a.Echo.GET("/designations", empHandler.DesignationsHandler)

	a.Echo.GET("/sessions/current", sessHandler.CurrentHandler)
	a.Echo.POST("/sessions", sessHandler.CreateHandler)
	a.Echo.DELETE("/sessions/current", sessHandler.DeleteHandler)
}

// Run serves and sweeps idle sessions until ctx is cancelled or the server
// fails, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	cfg := config.DefaultEnvConfig
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		a.Sessions.Run(egCtx, cfg.SESSION_SWEEP_INTERVAL)
		return nil
	})

	eg.Go(func() error {
		if err := a.Echo.Start(":" + cfg.APP_PORT); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.InfoLog(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
