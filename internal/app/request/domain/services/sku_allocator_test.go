package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// fakeIndex is an in-memory SKU namespace for allocator tests.
type fakeIndex struct {
	products map[string]bool
	requests map[string]bool
}

func newFakeIndex(products ...string) *fakeIndex {
	idx := &fakeIndex{
		products: make(map[string]bool),
		requests: make(map[string]bool),
	}
	for _, sku := range products {
		idx.products[sku] = true
	}
	return idx
}

func (f *fakeIndex) withRequests(skus ...string) *fakeIndex {
	for _, sku := range skus {
		f.requests[sku] = true
	}
	return f
}

func (f *fakeIndex) ProductSKUExists(_ context.Context, sku string) (bool, error) {
	return f.products[sku], nil
}

func (f *fakeIndex) RequestSKUExists(_ context.Context, sku string) (bool, error) {
	return f.requests[sku], nil
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	t.Run("free candidate is returned unchanged", func(t *testing.T) {
		alloc := NewSKUAllocator(newFakeIndex())

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeAdd)
		require.NoError(t, err)
		assert.Equal(t, "AB1234", sku)
	})

	t.Run("taken candidate derives prefix substitutes", func(t *testing.T) {
		alloc := NewSKUAllocator(newFakeIndex("AB1234"))

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeUpdate)
		require.NoError(t, err)
		assert.Equal(t, "AB-0", sku)
	})

	t.Run("substitutes ascend deterministically", func(t *testing.T) {
		alloc := NewSKUAllocator(newFakeIndex("AB1234", "AB-0", "AB-1"))

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeUpdate)
		require.NoError(t, err)
		assert.Equal(t, "AB-2", sku)
	})

	t.Run("add requests also avoid the request history", func(t *testing.T) {
		idx := newFakeIndex("AB1234").withRequests("AB-0")
		alloc := NewSKUAllocator(idx)

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeAdd)
		require.NoError(t, err)
		assert.Equal(t, "AB-1", sku)
	})

	t.Run("update requests ignore the request history", func(t *testing.T) {
		idx := newFakeIndex("AB1234").withRequests("AB-0")
		alloc := NewSKUAllocator(idx)

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeUpdate)
		require.NoError(t, err)
		assert.Equal(t, "AB-0", sku)
	})

	t.Run("delete requests pass through", func(t *testing.T) {
		alloc := NewSKUAllocator(newFakeIndex("AB1234"))

		sku, err := alloc.Allocate(ctx, "AB1234", domain.TypeDelete)
		require.NoError(t, err)
		assert.Equal(t, "AB1234", sku)
	})

	t.Run("short candidates are refused", func(t *testing.T) {
		alloc := NewSKUAllocator(newFakeIndex())

		_, err := alloc.Allocate(ctx, "A", domain.TypeAdd)
		assert.ErrorIs(t, err, domain.ErrSKUTooShort)
	})
}
