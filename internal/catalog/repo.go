package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Filter is the server-side subset of listing filters; the full pipeline
// (sizes, colors, sorting, pagination) runs in memory over the result.
type Filter struct {
	Category string
	Search   string
	MinPrice int64
	MaxPrice int64
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, f Filter) ([]Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, slug, title, category, price, currency, sizes, colors, images, description, sku, inventory, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`, p.ID, p.Slug, p.Title, p.Category, p.Price, p.Currency, p.Sizes, p.Colors, p.Images, p.Description, p.SKU, p.Inventory, p.Tags)
	return err
}

const productCols = `id, slug, title, category, price, currency, sizes, colors, images, description, sku, inventory, tags`

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT `+productCols+` FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.Slug, &p.Title, &p.Category, &p.Price, &p.Currency, &p.Sizes, &p.Colors, &p.Images, &p.Description, &p.SKU, &p.Inventory, &p.Tags)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT `+productCols+` FROM products WHERE slug=$1
	`, slug).Scan(&p.ID, &p.Slug, &p.Title, &p.Category, &p.Price, &p.Currency, &p.Sizes, &p.Colors, &p.Images, &p.Description, &p.SKU, &p.Inventory, &p.Tags)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	search := strings.TrimSpace(f.Search)
	maxPrice := f.MaxPrice
	if maxPrice <= 0 {
		maxPrice = 1<<62 - 1
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+productCols+`
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR title ILIKE '%'||$2||'%' OR description ILIKE '%'||$2||'%'
		       OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE '%'||$2||'%'))
		  AND price >= $3 AND price <= $4
		ORDER BY sku
	`, f.Category, search, f.MinPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Category, &p.Price, &p.Currency, &p.Sizes, &p.Colors, &p.Images, &p.Description, &p.SKU, &p.Inventory, &p.Tags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUpdate(cur, req)

	_, err = r.db.Exec(ctx, `
		UPDATE products
		SET title = $2, category = $3, price = $4, sizes = $5, colors = $6,
		    images = $7, description = $8, inventory = $9, tags = $10
		WHERE id = $1
	`, cur.ID, cur.Title, cur.Category, cur.Price, cur.Sizes, cur.Colors, cur.Images, cur.Description, cur.Inventory, cur.Tags)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// applyUpdate merges a partial update into p. Shared by the Postgres and
// in-memory repositories so both honor the same omitted-field rules.
func applyUpdate(p *Product, req UpdateProductRequest) {
	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Sizes != nil {
		p.Sizes = req.Sizes
	}
	if req.Colors != nil {
		p.Colors = req.Colors
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Inventory != nil {
		p.Inventory = *req.Inventory
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
}
