package shopifyclient

import (
	"context"
	"errors"

	shopifydomain "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

const productCreateMutation = `mutation populateProduct($product: ProductCreateInput!) {
  productCreate(product: $product) {
    product {
      id
      title
      handle
      status
      variants(first: 10) {
        edges {
          node {
            id
            price
            barcode
            createdAt
          }
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

func (c *ShopifyClient) CreateProduct(ctx context.Context, session *domain.AdminSession, input shopifydomain.ProductCreateInput) (*shopifydomain.Product, error) {
	var response shopifydomain.ProductCreateResponse

	err := c.execute(ctx, session, graphQLRequest{
		Query:     productCreateMutation,
		Variables: map[string]any{"product": input},
	}, &response)
	if err != nil {
		return nil, err
	}

	payload := response.ProductCreate
	if len(payload.UserErrors) > 0 {
		return nil, &shopifydomain.UserErrors{Operation: "productCreate", Errors: payload.UserErrors}
	}

	if payload.Product == nil {
		return nil, errors.New("shopify: productCreate não retornou o produto")
	}

	return payload.Product, nil
}
