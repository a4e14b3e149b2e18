package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AbaydullinAA/Project-Module2/log"
)

const DefaultRequestTimeout = 30 * time.Second

// Option optionally configures a Server.
type Option func(opts *options) error

// WithLogger sets a custom Logger.
func WithLogger(logger log.Logger) Option {
	return func(opts *options) error {
		opts.logger = logger
		return nil
	}
}

// WithRequestTimeout sets the timeout for request handlers.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(opts *options) error {
		opts.timeout = &timeout
		return nil
	}
}

// WithCORS configures the server to authorize Cross-Origin Resource Sharing
// (CORS) for the provided origins.
func WithCORS(origins ...string) Option {
	return func(opts *options) error {
		opts.corsOrigins = append(opts.corsOrigins, origins...)
		return nil
	}
}

// WithMiddleware adds custom middleware to the server.
func WithMiddleware(middlewares ...echo.MiddlewareFunc) Option {
	return func(opts *options) error {
		opts.middlewares = middlewares
		return nil
	}
}

type options struct {
	logger      log.Logger
	timeout     *time.Duration
	corsOrigins []string
	middlewares []echo.MiddlewareFunc
}

// Server serves the cipher HTTP API.
type Server struct {
	port   int
	echo   *echo.Echo
	logger log.Logger
}

// NewServer creates a new Server with the given options.
func NewServer(port int, opts ...Option) (*Server, error) {
	srvOpts := options{
		logger: log.NewLogger(),
	}

	for _, opt := range opts {
		if err := opt(&srvOpts); err != nil {
			return nil, err
		}
	}

	srv := &Server{
		port:   port,
		echo:   echo.New(),
		logger: srvOpts.logger,
	}

	srv.echo.HideBanner = true
	srv.echo.HidePort = true
	srv.echo.Pre(middleware.RemoveTrailingSlash())
	srv.echo.Use(middleware.Recover())
	srv.echo.Use(middleware.RequestLoggerWithConfig(newRequestLoggerConfig(srv.logger)))
	srv.echo.Use(errorTransformMiddleware)
	srv.echo.HTTPErrorHandler = httpErrorHandlerFunc(srv.logger)
	if len(srvOpts.corsOrigins) > 0 {
		srv.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: srvOpts.corsOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	for _, m := range srvOpts.middlewares {
		srv.echo.Use(m)
	}

	timeoutCfg := middleware.TimeoutConfig{
		Timeout: DefaultRequestTimeout,
	}
	if srvOpts.timeout != nil {
		timeoutCfg.Timeout = *srvOpts.timeout
	}
	srv.echo.Use(middleware.TimeoutWithConfig(timeoutCfg))

	srv.echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status: http.StatusText(http.StatusOK),
		})
	})

	return srv, nil
}

// Start begins serving on the configured port.
func (s *Server) Start() error {
	err := s.echo.Start(fmt.Sprintf(":%d", s.port))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) WaitHealthy(maxRetries int, interval time.Duration) error {
	healthzURL := fmt.Sprintf("%s/healthz", s.Address())

	var res *http.Response
	var err error

	for i := 0; i < maxRetries; i++ {
		res, err = http.Get(healthzURL)
		if err == nil && res.StatusCode == http.StatusOK {
			return nil
		}

		time.Sleep(interval)
	}

	if err != nil {
		return fmt.Errorf("server unhealthy: %w", err)
	} else if res != nil {
		return fmt.Errorf("server unhealthy: %s", http.StatusText(res.StatusCode))
	}

	return errors.New("server unhealthy")
}

// Address returns the server address which clients can connect to.
func (s *Server) Address() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

type Handler interface {
	Register(g *echo.Group)
}

func (s *Server) Register(pathPrefix string, h Handler, middleware ...echo.MiddlewareFunc) {
	h.Register(s.echo.Group(pathPrefix, middleware...))
}

func (s *Server) Add(method string, path string, handler echo.HandlerFunc) {
	s.echo.Add(method, path, handler)
}
