package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao codificar resposta:", err)
	}
}

// writeServiceError responde com o código do erro tipado, ou 500 quando o erro não é conhecido
func writeServiceError(w http.ResponseWriter, code string, message string) {
	if code == "" {
		code = apiErrors.ErrInternalServer
	}
	apiErrors.WriteError(w, code, message, nil)
}
