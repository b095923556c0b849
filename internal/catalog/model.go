// Package catalog provides the product model, repositories and the in-memory
// filter/sort/paginate pipeline behind the shop listing page.
package catalog

// Color is a selectable product color. Hex is the canonical value; Name is
// what shoppers see.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Product struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	// Price is a whole currency amount (no minor units), as stored.
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Sizes       []string `json:"sizes"`
	Colors      []Color  `json:"colors"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	SKU         string   `json:"sku"`
	Inventory   int      `json:"inventory"`
	Tags        []string `json:"tags"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ListResponse represents one page of the shop listing.
// swagger:model
type ListResponse struct {
	// page of products after filtering and sorting
	Items []Product `json:"items"`
	// total matches before pagination
	TotalCount int `json:"totalCount"`
	// number of pages at the applied page size
	PageCount int `json:"pageCount"`
	// 1-indexed page that was returned
	Page int `json:"page"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Slug        string   `json:"slug"        example:"mens-classic-linen-shirt"`
	Title       string   `json:"title"       example:"Men's Classic Linen Shirt"`
	Category    string   `json:"category"    example:"men"`
	Price       int64    `json:"price"       example:"1599"`
	Currency    string   `json:"currency"    example:"INR"`
	Sizes       []string `json:"sizes"`
	Colors      []Color  `json:"colors"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	SKU         string   `json:"sku"         example:"VV-M-001"`
	Inventory   int      `json:"inventory"   example:"120"`
	Tags        []string `json:"tags"`
}

// UpdateProductRequest payload of partial update. Zero values leave the
// stored field untouched; Price uses a pointer so 0 is expressible.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *int64   `json:"price"`
	Sizes       []string `json:"sizes"`
	Colors      []Color  `json:"colors"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Inventory   *int     `json:"inventory"`
	Tags        []string `json:"tags"`
}
