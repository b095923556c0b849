package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemRepo is an in-memory Repository. It backs the storefront when no
// Postgres DSN is configured and stands in for PGRepo in tests.
type MemRepo struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemRepo(seed []Product) *MemRepo {
	cp := make([]Product, len(seed))
	copy(cp, seed)
	return &MemRepo{products: cp}
}

func (r *MemRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, *p)
	return nil
}

func (r *MemRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].Slug == slug {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(ctx context.Context, f Filter) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MemRepo) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			applyUpdate(&r.products[i], req)
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// matchesSearch reports whether the lowercased needle occurs in the title,
// description or any tag.
func matchesSearch(p Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
