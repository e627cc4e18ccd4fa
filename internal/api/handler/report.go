package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

// GetSalespersonRanking retorna o total vendido por vendedor
func GetSalespersonRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetSalespersonRanking(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar ranking de vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "No se pudo obtener el resumen por vendedor", nil)
			return
		}

		writeJSON(w, http.StatusOK, ranking)
	})
}

// GetCategoryReport retorna o resumo de produtos e vendas por categoria e marca
func GetCategoryReport(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetCategoryReport(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar relatório por categoria:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "No se pudo obtener el reporte por categoría", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
