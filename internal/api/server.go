package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mje-dashboard/infrastructure/repository"
	"github.com/vfg2006/mje-dashboard/internal/api/handler"
	"github.com/vfg2006/mje-dashboard/internal/api/handler/router"
	"github.com/vfg2006/mje-dashboard/internal/config"
	"github.com/vfg2006/mje-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/mje-dashboard/internal/usecases/presenting"
	"github.com/vfg2006/mje-dashboard/pkg/middleware"
	"github.com/vfg2006/mje-dashboard/web"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API. SnapshotRepo e SnapshotSync são opcionais.
type Dependencies struct {
	Presenter     presenting.Presenter
	Authenticator authenticating.Authenticator
	SnapshotRepo  repository.AggregateSnapshotRepository
	SnapshotSync  handler.SnapshotSyncer
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	h, err := NewHandler(config, deps)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares global
func NewHandler(config *config.Config, deps Dependencies) (http.Handler, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar templates: %w", err)
	}

	static, err := handler.StaticHandler()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar assets estáticos: %w", err)
	}

	page := handler.PageConfig{
		Title:   config.Dashboard.Title,
		LogoURL: config.Dashboard.LogoURL,
	}

	cronServices := handler.CronJobServices{SnapshotSyncService: deps.SnapshotSync}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Static(static)...),
		router.WithRoutes(handler.Dashboard(deps.Presenter, page, templates)...),
		router.WithRoutes(handler.CronJobs(cronServices, deps.Authenticator)...),
		router.WithRoutes(handler.Snapshots(deps.SnapshotRepo, deps.Authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins...),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("server: sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("server: contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("server: erro durante a execução")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("server: iniciando desligamento gracioso")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: erro durante o desligamento")
		return err
	}

	logrus.Info("server: desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
