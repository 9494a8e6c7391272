package domain

import "strings"

// ProductGIDPrefix é o prefixo do id global de produto na Admin API
const ProductGIDPrefix = "gid://shopify/Product/"

type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Status   string    `json:"status"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	ID        string `json:"id"`
	Price     string `json:"price"`
	Barcode   string `json:"barcode,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// VariantPrice é a entrada da atualização em lote de preços
type VariantPrice struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

// SampleProductResult é a resposta da action de geração de produto
type SampleProductResult struct {
	Product *Product  `json:"product"`
	Variant []Variant `json:"variant"`
}

// NewSampleProductResult garante listas vazias em vez de null na resposta
func NewSampleProductResult(product *Product, variants []Variant) *SampleProductResult {
	if variants == nil {
		variants = []Variant{}
	}
	if product != nil && product.Variants == nil {
		product.Variants = []Variant{}
	}
	return &SampleProductResult{Product: product, Variant: variants}
}

// ProductNumericID remove o prefixo GID, ex: gid://shopify/Product/42 -> 42
func ProductNumericID(gid string) string {
	return strings.TrimPrefix(gid, ProductGIDPrefix)
}

// ProductGID aceita o id numérico ou o GID completo e devolve o GID
func ProductGID(id string) string {
	if strings.HasPrefix(id, ProductGIDPrefix) {
		return id
	}
	return ProductGIDPrefix + id
}
