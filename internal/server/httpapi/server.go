// Package httpapi exposes the account service over HTTP. It is a thin layer:
// it decodes requests, delegates to the accounts service, and maps sentinel
// errors to status codes and short JSON messages.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/malusolero/login-service/internal/logging"
	"github.com/malusolero/login-service/internal/server/accounts"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	accounts *accounts.Service
	logger   logging.Logger
}

func NewServer(address string, l logging.Logger, as *accounts.Service) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: as,
	}
}

// Router builds the route table. Exposed separately from Run so tests can
// drive the handlers through httptest without binding a socket.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/user", s.register).Methods(http.MethodPost)
	r.HandleFunc("/user/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/user/is-authenticated", s.isAuthenticated).Methods(http.MethodGet)
	r.HandleFunc("/user", s.update).Methods(http.MethodPut)
	r.HandleFunc("/user", s.delete).Methods(http.MethodDelete)
	r.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	r.Use(s.requestIDMiddleware, s.loggingMiddleware, s.recoverMiddleware)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
