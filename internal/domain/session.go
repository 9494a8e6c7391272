package domain

import "context"

// AdminSession é o contexto de sessão da loja, passado explicitamente para o loader e a action
type AdminSession struct {
	Shop        string
	AccessToken string
	APIVersion  string
	UserID      string
}

type sessionContextKey struct{}

// ContextWithSession guarda a sessão no contexto da requisição
func ContextWithSession(ctx context.Context, session *AdminSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext recupera a sessão colocada pelo middleware
func SessionFromContext(ctx context.Context) (*AdminSession, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*AdminSession)
	return session, ok && session != nil
}

// SessionTokenParam é o parâmetro com o session token quando não há header Authorization,
// usado no carregamento do app embutido e no formulário da action
const SessionTokenParam = "id_token"
