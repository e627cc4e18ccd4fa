package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
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

func Sales(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     AddSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     EditSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func Reports(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/by-salesperson",
			Method:  http.MethodGet,
			Handler: GetSalespersonRanking(service),
		},
		{
			Path:    "/v1/reports/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryReport(service),
		},
	}
}
