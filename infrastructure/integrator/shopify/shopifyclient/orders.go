package shopifyclient

import (
	"context"

	shopifydomain "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

const ordersQuery = `query dashboardOrders($first: Int!) {
  orders(first: $first) {
    edges {
      node {
        totalPriceSet {
          shopMoney {
            amount
            currencyCode
          }
        }
      }
    }
  }
}`

func (c *ShopifyClient) GetOrders(ctx context.Context, session *domain.AdminSession, first int) ([]shopifydomain.OrderEdge, error) {
	var response shopifydomain.OrdersResponse

	err := c.execute(ctx, session, graphQLRequest{
		Query:     ordersQuery,
		Variables: map[string]any{"first": first},
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Orders.Edges, nil
}
