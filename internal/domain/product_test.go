package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestProductGID(t *testing.T) {
	assert.Equal(t, "gid://shopify/Product/42", ProductGID("42"))
	assert.Equal(t, "gid://shopify/Product/42", ProductGID("gid://shopify/Product/42"))
	assert.Equal(t, "42", ProductNumericID(ProductGID("42")))
}

func TestNewSampleProductResult_EmptyLists(t *testing.T) {
	result := NewSampleProductResult(&Product{ID: "gid://shopify/Product/42"}, nil)

	body, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"variants":[]`)
	assert.Contains(t, string(body), `"variant":[]`)
	assert.NotContains(t, string(body), "null")
}

func TestNewSampleProductResult_NilProduct(t *testing.T) {
	result := NewSampleProductResult(nil, []Variant{{ID: "gid://shopify/ProductVariant/7", Price: "100.00"}})

	assert.Nil(t, result.Product)
	assert.Len(t, result.Variant, 1)
}
