package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Venda não encontrada", code: ErrSaleNotFound, expectedStatus: http.StatusNotFound},
		{name: "Dados obrigatórios", code: ErrMissingRequiredData, expectedStatus: http.StatusBadRequest},
		{name: "Banco de dados", code: ErrDatabaseOperation, expectedStatus: http.StatusInternalServerError},
		{name: "Código desconhecido", code: "XYZ", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensaje", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, "mensaje", body["message"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrInvalidRequest)
	assert.Equal(t, ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)
}
