// Package seed writes catalog fixtures. catalogctl uses it for demo data and
// the repository tests use it to build their scenarios.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nomet5/cake-app-sub003/internal/model"
)

type Seeder struct {
	DB  *sqlx.DB
	Now func() time.Time
}

func New(db *sqlx.DB) *Seeder {
	return &Seeder{DB: db, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *Seeder) fill(base *model.BaseModel) {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = s.Now()
	}
}

func (s *Seeder) exec(ctx context.Context, entity, query string, arg interface{}) error {
	if _, err := s.DB.NamedExecContext(ctx, query, arg); err != nil {
		return fmt.Errorf("insert %s: %w", entity, err)
	}
	return nil
}

func (s *Seeder) User(ctx context.Context, u *model.User) error {
	s.fill(&u.BaseModel)
	return s.exec(ctx, "user", `
        INSERT INTO users (id, first_name, last_name, email, phone, created_at)
        VALUES (:id, :first_name, :last_name, :email, :phone, :created_at)
    `, u)
}

func (s *Seeder) Category(ctx context.Context, c *model.Category) error {
	s.fill(&c.BaseModel)
	return s.exec(ctx, "category", `
        INSERT INTO categories (id, name, description, is_active, sort_order, created_at)
        VALUES (:id, :name, :description, :is_active, :sort_order, :created_at)
    `, c)
}

func (s *Seeder) Chef(ctx context.Context, c *model.Chef) error {
	s.fill(&c.BaseModel)
	return s.exec(ctx, "chef", `
        INSERT INTO chefs (id, user_id, business_name, specialty, description, is_active, is_verified, created_at)
        VALUES (:id, :user_id, :business_name, :specialty, :description, :is_active, :is_verified, :created_at)
    `, c)
}

func (s *Seeder) Product(ctx context.Context, p *model.Product) error {
	s.fill(&p.BaseModel)
	return s.exec(ctx, "product", `
        INSERT INTO products (id, chef_id, category_id, name, description, price, is_available, created_at)
        VALUES (:id, :chef_id, :category_id, :name, :description, :price, :is_available, :created_at)
    `, p)
}

func (s *Seeder) Image(ctx context.Context, img *model.ProductImage) error {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	return s.exec(ctx, "product image", `
        INSERT INTO product_images (id, product_id, url, is_primary, sort_order)
        VALUES (:id, :product_id, :url, :is_primary, :sort_order)
    `, img)
}

func (s *Seeder) Review(ctx context.Context, r *model.Review) error {
	s.fill(&r.BaseModel)
	return s.exec(ctx, "review", `
        INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at)
        VALUES (:id, :product_id, :user_id, :rating, :comment, :created_at)
    `, r)
}

func (s *Seeder) OrderItem(ctx context.Context, oi *model.OrderItem) error {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	if oi.OrderID == "" {
		oi.OrderID = uuid.New().String()
	}
	if oi.Quantity == 0 {
		oi.Quantity = 1
	}
	return s.exec(ctx, "order item", `
        INSERT INTO order_items (id, order_id, product_id, quantity)
        VALUES (:id, :order_id, :product_id, :quantity)
    `, oi)
}
