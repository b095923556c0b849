// Package inquiry handles product inquiries submitted from the contact and
// product pages.
package inquiry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("inquiry not found")

type Inquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	ProductID string `json:"productId,omitempty"`
}

// CreateInquiryRequest payload of inquiry submission.
// swagger:model CreateInquiryRequest
type CreateInquiryRequest struct {
	Name      string `json:"name"    example:"Asha"`
	Email     string `json:"email"   example:"asha@example.com"`
	Message   string `json:"message" example:"Is the linen shirt true to size?"`
	ProductID string `json:"productId"`
}

type Repository interface {
	Create(ctx context.Context, in *Inquiry) error
	List(ctx context.Context) ([]Inquiry, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, in *Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO inquiries (id, name, email, message, product_id)
		VALUES ($1,$2,$3,$4,$5)
	`, in.ID, in.Name, in.Email, in.Message, in.ProductID)
	return err
}

func (r *PGRepo) List(ctx context.Context) ([]Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, message, COALESCE(product_id,'') FROM inquiries
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		var in Inquiry
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Message, &in.ProductID); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

type MemRepo struct {
	mu        sync.RWMutex
	inquiries []Inquiry
}

func NewMemRepo() *MemRepo { return &MemRepo{} }

func (r *MemRepo) Create(ctx context.Context, in *Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, *in)
	return nil
}

func (r *MemRepo) List(ctx context.Context) ([]Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Inquiry, len(r.inquiries))
	copy(out, r.inquiries)
	return out, nil
}
