package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 16

// Server exposes the calculation engine over HTTP
type Server struct {
	Engine *calculation.CalculationEngine
	Log    logrus.FieldLogger
}

// NewServer creates a server; a nil log uses the standard logrus logger
func NewServer(engine *calculation.CalculationEngine, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{Engine: engine, Log: log}
}

// Router builds the chi router with middleware and every route mounted
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(AccessLog(s.Log))
	router.Use(Recoverer(s.Log))
	router.Use(BodyLimit(maxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/paycheck", s.handlePaycheck)
		r.Post("/gross", s.handleGross)
		r.Get("/years", s.handleYears)
	})

	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Infof("nlpay server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}
