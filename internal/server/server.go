// Package server exposes the registration form over HTTP: the server rendered
// form and success pages plus a small JSON API used by the enhancement script.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-regform/internal/config"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/openapi"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
)

const shutdownTimeout = 5 * time.Second

// Option customises a Server.
type Option func(*Server)

// WithHandoff replaces the in-memory navigation store.
func WithHandoff(handoff navigation.Handoff) Option {
	return func(s *Server) {
		if handoff != nil {
			s.handoff = handoff
		}
	}
}

// WithDecorators applies form decorators (ui overlays) once at startup.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(s *Server) {
		s.decorators = append(s.decorators, decorators...)
	}
}

// WithRenderer replaces the HTML renderer.
func WithRenderer(renderer *vanilla.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.html = renderer
		}
	}
}

// Server wires the registration core to chi routes.
type Server struct {
	cfg        config.Config
	logger     *zap.Logger
	router     chi.Router
	decorators []model.Decorator
	html       *vanilla.Renderer
	orch       *orchestrator.Orchestrator
	handoff    navigation.Handoff
	apiDoc     []byte
}

// New builds a Server. The form is decorated and the API document generated
// once; both are immutable afterwards.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.handoff == nil {
		s.handoff = navigation.New(navigation.WithTTL(cfg.Navigation.TTL))
	}
	if s.html == nil {
		renderer, err := vanilla.New(vanilla.WithOptionsResolver(orchestrator.SelectOptions))
		if err != nil {
			return nil, fmt.Errorf("server: html renderer: %w", err)
		}
		s.html = renderer
	}

	registry, err := render.NewRegistry(s.html)
	if err != nil {
		return nil, fmt.Errorf("server: renderer registry: %w", err)
	}
	s.orch = orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(s.html.Name()),
		orchestrator.WithUIDecorators(s.decorators...),
	)
	form, err := s.orch.Form()
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	doc, err := openapi.JSON(context.Background(), openapi.WithTitle(form.Summary+" API"))
	if err != nil {
		return nil, fmt.Errorf("server: api document: %w", err)
	}
	s.apiDoc = doc

	s.router = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleForm)
	r.Post("/", s.handleSubmitForm)
	r.Get("/success", s.handleSuccess)

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", s.handleCountries)
		r.Get("/countries/{country}/cities", s.handleCities)
		r.Post("/registrations/validate", s.handleValidate)
		r.Post("/registrations", s.handleRegister)
	})

	r.Get("/openapi.json", s.handleOpenAPI)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(vanilla.AssetsFS()))))

	return r
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
