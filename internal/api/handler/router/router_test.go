package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/sales",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/v1/sales", expectedStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/clientes", expectedStatus: http.StatusNotFound},
		{name: "Método não suportado", method: http.MethodPatch, path: "/v1/sales", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
}
