package shopifydomain

type OrdersResponse struct {
	Orders OrderConnection `json:"orders"`
}

type OrderConnection struct {
	Edges []OrderEdge `json:"edges"`
}

type OrderEdge struct {
	Node Order `json:"node"`
}

type Order struct {
	TotalPriceSet MoneyBag `json:"totalPriceSet"`
}

type MoneyBag struct {
	ShopMoney MoneyV2 `json:"shopMoney"`
}

// MoneyV2 traz o valor como string decimal, ex: "1234.50"
type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}
