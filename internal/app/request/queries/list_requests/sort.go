package list_requests

import (
	"sort"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// Sort key names accepted by the list query. The set is closed; anything
// else is rejected before a single row is read.
const (
	SortByName              = "Name"
	SortByStatus            = "Status"
	SortByPrice             = "Price"
	SortBySKU               = "SKU"
	SortByQuantity          = "Quantity"
	SortByTeam              = "Team"
	SortByCategory          = "Category"
	SortBySupplierFirstName = "Supplier First Name"
	SortBySupplierLastName  = "Supplier Last Name"
	SortByUserFirstName     = "User First Name"
	SortByUserLastName      = "User Last Name"
	SortByCreatedOn         = "CreatedOn"
)

// lessFunc orders two request views ascending for one sort key.
type lessFunc func(a, b *contracts.RequestView) bool

var comparators = map[string]lessFunc{
	SortByName: func(a, b *contracts.RequestView) bool { return a.Name < b.Name },
	// Status is the active/closed flag, not the workflow stage: closed
	// requests sort before active ones ascending.
	SortByStatus:   func(a, b *contracts.RequestView) bool { return !a.Active && b.Active },
	SortByPrice:    func(a, b *contracts.RequestView) bool { return a.Price < b.Price },
	SortBySKU:      func(a, b *contracts.RequestView) bool { return a.SKU < b.SKU },
	SortByQuantity: func(a, b *contracts.RequestView) bool { return a.Quantity < b.Quantity },
	SortByTeam: func(a, b *contracts.RequestView) bool {
		return stringOrEmpty(a.TeamName) < stringOrEmpty(b.TeamName)
	},
	SortByCategory: func(a, b *contracts.RequestView) bool { return a.CategoryName < b.CategoryName },
	SortBySupplierFirstName: func(a, b *contracts.RequestView) bool {
		return a.SupplierFirstName < b.SupplierFirstName
	},
	SortBySupplierLastName: func(a, b *contracts.RequestView) bool {
		return a.SupplierLastName < b.SupplierLastName
	},
	SortByUserFirstName: func(a, b *contracts.RequestView) bool {
		return stringOrEmpty(a.UserFirstName) < stringOrEmpty(b.UserFirstName)
	},
	SortByUserLastName: func(a, b *contracts.RequestView) bool {
		return stringOrEmpty(a.UserLastName) < stringOrEmpty(b.UserLastName)
	},
	SortByCreatedOn: func(a, b *contracts.RequestView) bool { return a.CreatedOn.Before(b.CreatedOn) },
}

// sortViews orders views in place. An empty key keeps the read model's
// default order; an unknown key is a validation error.
func sortViews(views []*contracts.RequestView, key string, descending bool) error {
	if key == "" {
		return nil
	}

	less, ok := comparators[key]
	if !ok {
		return domain.ErrUnknownSortKey
	}

	if descending {
		asc := less
		less = func(a, b *contracts.RequestView) bool { return asc(b, a) }
	}

	sort.SliceStable(views, func(i, j int) bool {
		return less(views[i], views[j])
	})

	return nil
}

// stringOrEmpty renders a missing relation as an empty placeholder so null
// assignees and teams sort ahead of named ones.
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
