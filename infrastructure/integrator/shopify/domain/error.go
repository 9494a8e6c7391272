package shopifydomain

import (
	"fmt"
	"strings"
)

// GraphQLErrorItem é um item do array "errors" da resposta GraphQL
type GraphQLErrorItem struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// GraphQLError representa erros de nível superior retornados pela Admin API
type GraphQLError struct {
	Errors []GraphQLErrorItem
}

func (e *GraphQLError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		messages = append(messages, item.Message)
	}
	return "shopify: graphql errors: " + strings.Join(messages, "; ")
}

// IsThrottled verifica se a plataforma recusou a chamada por limite de custo
func (e *GraphQLError) IsThrottled() bool {
	for _, item := range e.Errors {
		if code, ok := item.Extensions["code"].(string); ok && code == "THROTTLED" {
			return true
		}
	}
	return false
}

// UserErrors são erros de validação devolvidos dentro do payload de uma mutation
type UserErrors struct {
	Operation string
	Errors    []UserError
}

func (e *UserErrors) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if len(item.Field) > 0 {
			messages = append(messages, fmt.Sprintf("%s: %s", strings.Join(item.Field, "."), item.Message))
			continue
		}
		messages = append(messages, item.Message)
	}
	return fmt.Sprintf("shopify: %s user errors: %s", e.Operation, strings.Join(messages, "; "))
}

// HTTPError é uma resposta HTTP diferente de 200
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("shopify: requisição falhou com status %d: %s", e.StatusCode, e.Body)
}
