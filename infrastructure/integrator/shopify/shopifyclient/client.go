package shopifyclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	shopifydomain "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMissingSession indica uma sessão sem loja ou sem token de acesso
var ErrMissingSession = errors.New("shopify: sessão sem loja ou token de acesso")

type Client interface {
	GetOrders(ctx context.Context, session *domain.AdminSession, first int) ([]shopifydomain.OrderEdge, error)
	CreateProduct(ctx context.Context, session *domain.AdminSession, input shopifydomain.ProductCreateInput) (*shopifydomain.Product, error)
	UpdateVariantsBulk(ctx context.Context, session *domain.AdminSession, productID string, variants []shopifydomain.ProductVariantsBulkInput) ([]shopifydomain.ProductVariant, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   jsoniter.RawMessage              `json:"data"`
	Errors []shopifydomain.GraphQLErrorItem `json:"errors"`
}

// endpoint monta https://{loja}/admin/api/{versão}/graphql.json
func (c *ShopifyClient) endpoint(session *domain.AdminSession) (string, error) {
	base := c.config.Shopify.AdminBaseURL
	if base == "" {
		base = "https://" + session.Shop
	}

	version := session.APIVersion
	if version == "" {
		version = c.config.Shopify.APIVersion
	}

	return url.JoinPath(base, "admin", "api", version, "graphql.json")
}

// execute envia a operação GraphQL e decodifica o campo "data" em out
func (c *ShopifyClient) execute(ctx context.Context, session *domain.AdminSession, request graphQLRequest, out any) error {
	if session == nil || session.Shop == "" || session.AccessToken == "" {
		return ErrMissingSession
	}

	if c.config.Shopify.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Shopify.RequestTimeout)
		defer cancel()
	}

	endpoint, err := c.endpoint(session)
	if err != nil {
		return fmt.Errorf("erro ao montar a URL da Admin API: %w", err)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("erro ao serializar a operação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", session.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &shopifydomain.HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return &shopifydomain.GraphQLError{Errors: envelope.Errors}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("shopify: resposta sem campo data")
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("erro ao decodificar data: %w", err)
	}

	return nil
}
