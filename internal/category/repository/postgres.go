package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindActive(ctx context.Context) ([]model.CategoryRecord, error) {
	conn, err := r.DB.Connx(ctx)
	if err != nil {
		return nil, apperr.Repository("acquire connection", "categories", err)
	}
	defer conn.Close()

	query := `
        SELECT c.id, c.name, c.description, c.sort_order, c.is_active, c.created_at,
               (SELECT COUNT(*) FROM products p
                WHERE p.category_id = c.id AND p.is_available = TRUE) AS product_count
        FROM categories c
        WHERE c.is_active = TRUE
        ORDER BY c.sort_order ASC, c.name ASC
    `

	categories := []model.CategoryRecord{}
	if err := conn.SelectContext(ctx, &categories, query); err != nil {
		return nil, apperr.Repository("list", "categories", err)
	}
	return categories, nil
}
