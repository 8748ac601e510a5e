package handler

import (
	"html/template"
	"net/http"

	"github.com/vfg2006/mje-dashboard/infrastructure/repository"
	"github.com/vfg2006/mje-dashboard/internal/api/handler/router"
	"github.com/vfg2006/mje-dashboard/internal/usecases/presenting"
	"github.com/vfg2006/mje-dashboard/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Static(static http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: static,
		},
	}
}

func Dashboard(presenter presenting.Presenter, page PageConfig, templates *template.Template) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(presenter, page, templates),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: DashboardView(presenter),
		},
		{
			Path:    "/v1/dashboard/months",
			Method:  http.MethodGet,
			Handler: DashboardMonths(presenter),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: DashboardExport(presenter),
		},
	}
}

func CronJobs(services CronJobServices, validator middleware.TokenValidator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.Authenticated(validator), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}

func Snapshots(repo repository.AggregateSnapshotRepository, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/latest",
			Method:      http.MethodGet,
			Handler:     LatestSnapshot(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated(validator), middleware.AdminOnly()},
		},
	}
}
