package services

import (
	"context"
	"fmt"

	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// SKUIndex answers collision questions for the SKU namespace. Product SKUs
// cover the live catalog; request SKUs cover every registered request,
// active or not.
type SKUIndex interface {
	ProductSKUExists(ctx context.Context, sku string) (bool, error)
	RequestSKUExists(ctx context.Context, sku string) (bool, error)
}

// SKUAllocator derives collision-free SKUs for incoming requests.
//
// When a candidate is taken, substitutes are generated from the candidate's
// first two characters plus an ascending counter ("AB-0", "AB-1", ...). The
// search order is deterministic so the same namespace always yields the
// same substitute.
type SKUAllocator struct {
	index SKUIndex
}

// NewSKUAllocator creates a new SKUAllocator.
func NewSKUAllocator(index SKUIndex) *SKUAllocator {
	return &SKUAllocator{index: index}
}

// Allocate returns a SKU guaranteed free for the given operation kind.
//
// Update requests only avoid the live catalog; Add requests additionally
// avoid every registered request, so a historical request permanently
// reserves its SKU against new additions. Any other kind returns the
// candidate unchanged.
func (a *SKUAllocator) Allocate(ctx context.Context, candidate string, kind domain.RequestType) (string, error) {
	switch kind {
	case domain.TypeUpdate, domain.TypeAdd:
		if len(candidate) < 2 {
			return "", domain.ErrSKUTooShort
		}
	default:
		return candidate, nil
	}

	free, err := a.isFree(ctx, candidate, kind)
	if err != nil {
		return "", err
	}
	if free {
		return candidate, nil
	}

	prefix := candidate[:2]
	for n := 0; ; n++ {
		sku := fmt.Sprintf("%s-%d", prefix, n)
		free, err := a.isFree(ctx, sku, kind)
		if err != nil {
			return "", err
		}
		if free {
			return sku, nil
		}
	}
}

func (a *SKUAllocator) isFree(ctx context.Context, sku string, kind domain.RequestType) (bool, error) {
	taken, err := a.index.ProductSKUExists(ctx, sku)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	if kind == domain.TypeAdd {
		taken, err = a.index.RequestSKUExists(ctx, sku)
		if err != nil {
			return false, err
		}
		if taken {
			return false, nil
		}
	}

	return true, nil
}
