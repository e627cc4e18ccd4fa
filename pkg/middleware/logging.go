package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// slowRequest marca requisições lentas no log de conclusão
const slowRequest = 500 * time.Millisecond

// LoggingMiddleware abre o escopo de log da requisição e registra a conclusão
// com status, duração, termo de busca e a venda que o handler anotou.
// Um X-Correlation-ID recebido (UUID) é reaproveitado.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(CorrelationIDHeader)
			if !log.ValidCorrelationID(correlationID) {
				correlationID = log.NewCorrelationID()
			}

			ctx := log.WithScope(r.Context(), correlationID)
			if q := r.URL.Query().Get("q"); q != "" {
				log.Annotate(ctx, log.SearchField, q)
			}
			w.Header().Set(CorrelationIDHeader, correlationID)

			log.ForContext(ctx).WithFields(log.Fields{
				"method":         r.Method,
				"path":           r.URL.Path,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Debug("Requisição iniciada")

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r.WithContext(ctx))

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})
			if elapsed > slowRequest {
				logger = logger.WithField("slow", true)
			}

			msg := fmt.Sprintf("%s %s %d", r.Method, r.URL.Path, lrw.statusCode)
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}
		})
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics e responde 500. O ID de correlação vem do
// escopo da requisição ou, quando este middleware está por fora do
// LoggingMiddleware, do cabeçalho que ele já escreveu na resposta.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				correlationID := log.GetCorrelationID(r.Context())
				if correlationID == "" {
					correlationID = w.Header().Get(CorrelationIDHeader)
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					log.CorrelationIDField: correlationID,
					log.StackTraceField:    string(stack),
					"panic_error":          fmt.Sprint(recovered),
					"method":               r.Method,
					"path":                 r.URL.Path,
				}).Error("Erro não tratado na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno del servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
