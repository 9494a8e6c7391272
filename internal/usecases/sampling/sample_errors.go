package sampling

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSession         = errors.New("admin session is required")
	ErrProductCreateFailed    = errors.New("error creating sample product")
	ErrProductWithoutVariants = errors.New("created product has no variants")
	ErrVariantUpdateFailed    = errors.New("product created but variant price update failed")
)

// SampleError carrega o id do produto quando ele chegou a ser criado
type SampleError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // GID do produto criado (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *SampleError) Error() string {
	msg := e.Err.Error()
	if e.ProductID != "" {
		msg = fmt.Sprintf("%s (product %s)", msg, e.ProductID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

func NewSampleError(err error, code string, productID string, details string) *SampleError {
	return &SampleError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
