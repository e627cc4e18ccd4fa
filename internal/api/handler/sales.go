package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// Mensagens exibidas ao usuário final
const (
	msgSaleCreated  = "Venta registrada correctamente"
	msgSaleUpdated  = "Venta actualizada correctamente"
	msgSaleDeleted  = "Venta eliminada correctamente"
	msgSaleNotFound = "La venta no existe"
	msgMissingData  = "Faltan datos obligatorios"
	msgInvalidDate  = "La fecha debe tener el formato AAAA-MM-DD"
	msgInvalidBody  = "Solicitud inválida"
	msgInvalidID    = "Identificador de venta inválido"
	msgDatabase     = "No se pudo completar la operación"
)

func ListSales(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("q")

		sales, err := service.ListSales(r.Context(), search)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar vendas")
			respondSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func AddSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgInvalidBody, nil)
			return
		}

		id, err := service.AddSale(r.Context(), &request)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao registrar venda")
			respondSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, domain.OperationResponse{
			Success: true,
			Message: msgSaleCreated,
			ID:      id,
		})
	})
}

func EditSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDParam(w, r)
		if !ok {
			return
		}

		var request domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgInvalidBody, nil)
			return
		}

		if err := service.EditSale(r.Context(), id, &request); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao atualizar venda")
			respondSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.OperationResponse{
			Success: true,
			Message: msgSaleUpdated,
		})
	})
}

func DeleteSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDParam(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSale(r.Context(), id); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao excluir venda")
			respondSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.OperationResponse{
			Success: true,
			Message: msgSaleDeleted,
		})
	})
}

func saleIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgInvalidID, nil)
		return 0, false
	}
	log.Annotate(r.Context(), log.SaleIDField, id)

	return id, true
}

// respondSaleError traduz os erros do serviço de vendas para a resposta da API
func respondSaleError(w http.ResponseWriter, err error) {
	var saleErr *selling.SaleError
	if !errors.As(err, &saleErr) {
		writeServiceError(w, apiErrors.ErrInternalServer, msgDatabase)
		return
	}

	switch {
	case errors.Is(err, selling.ErrSaleNotFound):
		writeServiceError(w, saleErr.Code, msgSaleNotFound)
	case errors.Is(err, selling.ErrMissingRequiredData):
		apiErrors.WriteError(w, saleErr.Code, msgMissingData, saleErr.Details)
	case errors.Is(err, selling.ErrInvalidDate):
		writeServiceError(w, saleErr.Code, msgInvalidDate)
	default:
		writeServiceError(w, saleErr.Code, msgDatabase)
	}
}
