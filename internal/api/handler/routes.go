package handler

import (
	"net/http"

	"github.com/vfg2006/webinfo-api/internal/api/handler/router"
	"github.com/vfg2006/webinfo-api/internal/scheduler"
	"github.com/vfg2006/webinfo-api/internal/usecases/authenticating"
	"github.com/vfg2006/webinfo-api/internal/usecases/reporting"
	"github.com/vfg2006/webinfo-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DomainReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/domains/:domain/traffic-history",
			Method:      http.MethodGet,
			Handler:     GetTrafficHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/domains/:domain/info",
			Method:      http.MethodGet,
			Handler:     GetURLInfo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func TrackedDomains(service DomainService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/domains",
			Method:      http.MethodGet,
			Handler:     ListTrackedDomains(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/domains",
			Method:      http.MethodPost,
			Handler:     CreateTrackedDomain(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(syncService *scheduler.TrafficSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/traffic-sync",
			Method:      http.MethodPost,
			Handler:     RunTrafficSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
