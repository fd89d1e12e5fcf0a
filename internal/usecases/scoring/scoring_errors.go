package scoring

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pontuação de fadiga
var (
	// Erros de validação
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrNoMetricsFound    = errors.New("no ad metrics found for account")

	// Erros de serviços externos
	ErrMetaIntegration = errors.New("error fetching ad metrics from Meta")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ScoringError é um erro com contexto adicional para pontuação
type ScoringError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScoringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScoringError) Unwrap() error {
	return e.Err
}

// NewScoringError cria um novo ScoringError
func NewScoringError(err error, code string, details string) *ScoringError {
	return &ScoringError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewScoringErrorWithID cria um novo ScoringError com ID da conta
func NewScoringErrorWithID(err error, code string, accountID string, details string) *ScoringError {
	return &ScoringError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
