package shopifydomain

type ProductCreateInput struct {
	Title string `json:"title"`
}

type ProductVariantsBulkInput struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

type Product struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Handle   string            `json:"handle"`
	Status   string            `json:"status"`
	Variants VariantConnection `json:"variants"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type VariantEdge struct {
	Node ProductVariant `json:"node"`
}

type ProductVariant struct {
	ID        string  `json:"id"`
	Price     string  `json:"price"`
	Barcode   *string `json:"barcode"`
	CreatedAt string  `json:"createdAt"`
}

type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type ProductCreateResponse struct {
	ProductCreate struct {
		Product    *Product    `json:"product"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"productCreate"`
}

type ProductVariantsBulkUpdateResponse struct {
	ProductVariantsBulkUpdate struct {
		ProductVariants []ProductVariant `json:"productVariants"`
		UserErrors      []UserError      `json:"userErrors"`
	} `json:"productVariantsBulkUpdate"`
}
