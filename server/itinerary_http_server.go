package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"trip-planner/config"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

type ItineraryHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.Config
	logger    *zap.Logger

	registerOnce sync.Once
}

func NewItineraryHttpServer(router *Router, muxRouter *mux.Router, cfg config.Config, logger *zap.Logger) *ItineraryHttpServer {
	return &ItineraryHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
		logger:    logger.Named("ItineraryHttpServer"),
	}
}

// Handler wraps the router as logging → CORS → rate limit → router. Routes
// are registered on the first call only.
func (s *ItineraryHttpServer) Handler() http.Handler {
	s.registerOnce.Do(s.router.RegisterRoutes)

	limited := NewRateLimiter(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst).Limit(s.muxRouter)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(limited)

	return LoggingMiddleware(s.logger, corsHandler)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *ItineraryHttpServer) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.ServerAddr,
		Handler:           s.Handler(),
		ReadTimeout:       7 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// covers a full itinerary build
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.String("addr", s.cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.logger.Info("Shutting down the server...")
	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("Server exiting")
	return nil
}
