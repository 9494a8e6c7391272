package shopifyclient

import (
	"context"

	shopifydomain "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

const variantsBulkUpdateMutation = `mutation updateSampleVariantPrice($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    productVariants {
      id
      price
      barcode
      createdAt
    }
    userErrors {
      field
      message
    }
  }
}`

func (c *ShopifyClient) UpdateVariantsBulk(ctx context.Context, session *domain.AdminSession, productID string, variants []shopifydomain.ProductVariantsBulkInput) ([]shopifydomain.ProductVariant, error) {
	var response shopifydomain.ProductVariantsBulkUpdateResponse

	err := c.execute(ctx, session, graphQLRequest{
		Query: variantsBulkUpdateMutation,
		Variables: map[string]any{
			"productId": productID,
			"variants":  variants,
		},
	}, &response)
	if err != nil {
		return nil, err
	}

	payload := response.ProductVariantsBulkUpdate
	if len(payload.UserErrors) > 0 {
		return nil, &shopifydomain.UserErrors{Operation: "productVariantsBulkUpdate", Errors: payload.UserErrors}
	}

	return payload.ProductVariants, nil
}
