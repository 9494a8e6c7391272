package shopify

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

type ShopifyIntegrator interface {
	GetOrderRecords(ctx context.Context, session *domain.AdminSession, limit int) ([]domain.OrderRecord, error)
	CreateProduct(ctx context.Context, session *domain.AdminSession, title string) (*domain.Product, error)
	UpdateVariantPrices(ctx context.Context, session *domain.AdminSession, productID string, prices []domain.VariantPrice) ([]domain.Variant, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopifyService) GetOrderRecords(ctx context.Context, session *domain.AdminSession, limit int) ([]domain.OrderRecord, error) {
	if limit < 1 || limit > config.MaxOrdersLimit {
		limit = s.cfg.Dashboard.OrdersLimit
	}

	edges, err := s.Client.GetOrders(ctx, session, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop":  session.Shop,
			"error": err.Error(),
		}).Error("shopify: falha ao buscar pedidos")
		return nil, errors.Wrap(err, "shopify: orders")
	}

	records := FactoryOrderRecords(edges)

	logrus.WithFields(logrus.Fields{
		"shop":         session.Shop,
		"orders_count": len(records),
	}).Debug("shopify: pedidos carregados")

	return records, nil
}

func (s *ShopifyService) CreateProduct(ctx context.Context, session *domain.AdminSession, title string) (*domain.Product, error) {
	product, err := s.Client.CreateProduct(ctx, session, shopifydomain.ProductCreateInput{Title: title})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop":  session.Shop,
			"title": title,
			"error": err.Error(),
		}).Error("shopify: falha ao criar produto")
		return nil, errors.Wrap(err, "shopify: productCreate")
	}

	return FactoryProduct(product), nil
}

func (s *ShopifyService) UpdateVariantPrices(ctx context.Context, session *domain.AdminSession, productID string, prices []domain.VariantPrice) ([]domain.Variant, error) {
	inputs := make([]shopifydomain.ProductVariantsBulkInput, 0, len(prices))
	for _, p := range prices {
		inputs = append(inputs, shopifydomain.ProductVariantsBulkInput{ID: p.ID, Price: p.Price})
	}

	variants, err := s.Client.UpdateVariantsBulk(ctx, session, productID, inputs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop":       session.Shop,
			"product_id": productID,
			"error":      err.Error(),
		}).Error("shopify: falha ao atualizar preço das variantes")
		return nil, errors.Wrap(err, "shopify: productVariantsBulkUpdate")
	}

	return FactoryVariants(variants), nil
}

// FactoryOrderRecords achata as edges em registros; o valor segue como string para soma exata
func FactoryOrderRecords(edges []shopifydomain.OrderEdge) []domain.OrderRecord {
	records := make([]domain.OrderRecord, 0, len(edges))
	for _, edge := range edges {
		money := edge.Node.TotalPriceSet.ShopMoney
		records = append(records, domain.OrderRecord{
			TotalAmount:  money.Amount,
			CurrencyCode: money.CurrencyCode,
		})
	}
	return records
}

func FactoryProduct(product *shopifydomain.Product) *domain.Product {
	if product == nil {
		return nil
	}

	nodes := make([]shopifydomain.ProductVariant, 0, len(product.Variants.Edges))
	for _, edge := range product.Variants.Edges {
		nodes = append(nodes, edge.Node)
	}

	return &domain.Product{
		ID:       product.ID,
		Title:    product.Title,
		Handle:   product.Handle,
		Status:   product.Status,
		Variants: FactoryVariants(nodes),
	}
}

func FactoryVariants(variants []shopifydomain.ProductVariant) []domain.Variant {
	result := make([]domain.Variant, 0, len(variants))
	for _, v := range variants {
		variant := domain.Variant{
			ID:        v.ID,
			Price:     v.Price,
			CreatedAt: v.CreatedAt,
		}
		if v.Barcode != nil {
			variant.Barcode = *v.Barcode
		}
		result = append(result, variant)
	}
	return result
}
