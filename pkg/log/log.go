// Package log concentra os logs da API e do importador sobre logrus.
// Cada requisição carrega um escopo com o ID de correlação e os campos que os
// handlers anotam (venda, busca), e todo log emitido com ForContext os inclui.
package log

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Campos com significado fixo nos logs
const (
	CorrelationIDField = "correlation_id"
	RunIDField         = "run_id"
	SaleIDField        = "sale_id"
	SearchField        = "search"
	StackTraceField    = "stack_trace"
)

// verboseFields só aparecem fora do ambiente de desenvolvimento
var verboseFields = map[string]bool{
	StackTraceField:  true,
	"remote_addr":    true,
	"user_agent":     true,
	"referer":        true,
	"content_length": true,
}

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type logger struct {
	*logrus.Entry
}

// L escreve no logger padrão do logrus
var L Logger = &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment vale para APP_ENV vazio, "development" ou "dev"
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure define formato e nível dos logs: texto em desenvolvimento, JSON nos
// demais ambientes. Um nível inválido cai para info.
func Configure(level string) logrus.Level {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %q, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return parsed
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	dev := IsDevelopment()
	for k, v := range fields {
		if dev && verboseFields[k] {
			continue
		}
		kept[k] = v
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// scope guarda o que uma requisição acumula para os seus logs
type scope struct {
	correlationID string

	mu     sync.Mutex
	fields Fields
}

type scopeKey struct{}

// NewCorrelationID gera um ID novo para uma requisição
func NewCorrelationID() string {
	return uuid.NewString()
}

// ValidCorrelationID aceita apenas UUIDs vindos de fora
func ValidCorrelationID(id string) bool {
	_, err := uuid.Parse(id)
	return id != "" && err == nil
}

// WithScope abre o escopo de logs de uma requisição
func WithScope(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{
		correlationID: correlationID,
		fields:        Fields{},
	})
}

func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*scope)
	return s
}

// GetCorrelationID devolve "" fora de uma requisição
func GetCorrelationID(ctx context.Context) string {
	if s := scopeFrom(ctx); s != nil {
		return s.correlationID
	}
	return ""
}

// Annotate registra um campo no escopo da requisição; sem escopo não faz nada
func Annotate(ctx context.Context, key string, value interface{}) {
	s := scopeFrom(ctx)
	if s == nil {
		return
	}
	s.mu.Lock()
	s.fields[key] = value
	s.mu.Unlock()
}

// ForContext devolve um logger com o ID de correlação e os campos anotados
func ForContext(ctx context.Context) Logger {
	s := scopeFrom(ctx)
	if s == nil {
		return L
	}

	s.mu.Lock()
	fields := make(Fields, len(s.fields)+1)
	for k, v := range s.fields {
		fields[k] = v
	}
	s.mu.Unlock()

	fields[CorrelationIDField] = s.correlationID
	return L.WithFields(fields)
}
