package catalog

import (
	"sort"
	"strings"
)

// Sort modes for the shop listing. Featured keeps the catalog's natural
// order.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
)

// ParseSort maps a query-string value to a Sort, defaulting to featured.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return Sort(s)
	default:
		return SortFeatured
	}
}

const DefaultPageSize = 8

// QuerySpec is one shop-listing request. Filter dimensions compose by AND;
// the size and color sets each compose by OR internally. MaxPrice <= 0 means
// no upper bound.
type QuerySpec struct {
	Query    string
	Category string
	Sizes    []string
	Colors   []string
	MinPrice int64
	MaxPrice int64
	Sort     Sort
	Page     int
	PageSize int
}

type Result struct {
	Items      []Product
	TotalCount int
	PageCount  int
}

// Search runs the full filter/sort/paginate pipeline over an already
// materialized catalog snapshot. It is a pure function: the input slice is
// never reordered or mutated, and identical inputs yield identical results.
func Search(products []Product, spec QuerySpec) Result {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, spec) {
			filtered = append(filtered, p)
		}
	}

	switch spec.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Title < filtered[j].Title })
	case SortNameDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Title > filtered[j].Title })
	}

	pageSize := spec.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(filtered)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := spec.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalCount: total,
		PageCount:  pageCount,
	}
}

func matches(p Product, spec QuerySpec) bool {
	if q := strings.ToLower(strings.TrimSpace(spec.Query)); q != "" {
		if !matchesSearch(p, q) {
			return false
		}
	}
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}
	if len(spec.Sizes) > 0 && !offersAnySize(p, spec.Sizes) {
		return false
	}
	if len(spec.Colors) > 0 && !offersAnyColor(p, spec.Colors) {
		return false
	}
	if p.Price < spec.MinPrice {
		return false
	}
	if spec.MaxPrice > 0 && p.Price > spec.MaxPrice {
		return false
	}
	return true
}

func offersAnySize(p Product, sizes []string) bool {
	for _, want := range sizes {
		for _, have := range p.Sizes {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Color filters match by display name, unlike cart line identity which keys
// on the hex value.
func offersAnyColor(p Product, names []string) bool {
	for _, want := range names {
		for _, c := range p.Colors {
			if c.Name == want {
				return true
			}
		}
	}
	return false
}
