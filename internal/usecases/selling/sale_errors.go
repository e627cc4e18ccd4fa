package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("missing required sale data")
	ErrInvalidDate         = errors.New("invalid sale date")

	ErrSaleNotFound = errors.New("sale not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  int64  // ID da venda envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError cria um novo SaleError
func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewSaleErrorWithID cria um novo SaleError com o ID da venda
func NewSaleErrorWithID(err error, code string, saleID int64, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
