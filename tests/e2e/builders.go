package e2e

import (
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/create_request"
	"github.com/light-bringer/catreq-service/tests/testutil"
)

// RequestBuilder helps create change requests for tests with a fluent interface
type RequestBuilder struct {
	requestType string
	name        string
	price       float64
	sku         string
	quantity    int64
	description string
	categoryID  int64
	supplierID  int64
}

// NewRequestBuilder creates a new builder with default values
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		requestType: string(domain.TypeAdd),
		name:        "Test Widget",
		price:       49.99,
		sku:         "WID-100",
		quantity:    25,
		description: "Default description",
		categoryID:  testutil.CategoryID,
		supplierID:  testutil.SupplierID,
	}
}

// AsUpdate switches the builder to an update request
func (b *RequestBuilder) AsUpdate() *RequestBuilder {
	b.requestType = string(domain.TypeUpdate)
	return b
}

// WithName sets the proposed product name
func (b *RequestBuilder) WithName(name string) *RequestBuilder {
	b.name = name
	return b
}

// WithSKU sets the proposed SKU
func (b *RequestBuilder) WithSKU(sku string) *RequestBuilder {
	b.sku = sku
	return b
}

// WithPrice sets the proposed price
func (b *RequestBuilder) WithPrice(price float64) *RequestBuilder {
	b.price = price
	return b
}

// WithQuantity sets the proposed quantity
func (b *RequestBuilder) WithQuantity(quantity int64) *RequestBuilder {
	b.quantity = quantity
	return b
}

// Build creates the create_request.Request
func (b *RequestBuilder) Build() *create_request.Request {
	return &create_request.Request{
		RequestType: b.requestType,
		Name:        b.name,
		Price:       b.price,
		SKU:         b.sku,
		Quantity:    b.quantity,
		Description: b.description,
		CategoryID:  b.categoryID,
		SupplierID:  b.supplierID,
	}
}
