package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/chef"
	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/model"
)

const publicWhere = ` WHERE ch.is_active = TRUE AND ch.is_verified = TRUE`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindPublic(ctx context.Context, f *dto.ChefFilters) ([]model.ChefRecord, int, error) {
	conn, err := r.DB.Connx(ctx)
	if err != nil {
		return nil, 0, apperr.Repository("acquire connection", "chefs", err)
	}
	defer conn.Close()

	var count int
	if err := conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM chefs ch"+publicWhere); err != nil {
		return nil, 0, apperr.Repository("count", "chefs", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = chef.DefaultLimit
	}

	query := `
        SELECT ch.id, ch.user_id, ch.business_name, ch.specialty, ch.description,
               ch.is_active, ch.is_verified, ch.created_at,
               u.first_name, u.last_name, u.email, u.phone,
               (SELECT COUNT(*) FROM products p WHERE p.chef_id = ch.id) AS product_count,
               (SELECT COUNT(*) FROM reviews r
                JOIN products p ON p.id = r.product_id
                WHERE p.chef_id = ch.id) AS review_count,
               (SELECT CAST(AVG(r.rating) AS DOUBLE PRECISION) FROM reviews r
                JOIN products p ON p.id = r.product_id
                WHERE p.chef_id = ch.id) AS average_rating
        FROM chefs ch
        LEFT JOIN users u ON u.id = ch.user_id` + publicWhere + `
        ORDER BY ch.business_name ASC, ch.id ASC
        LIMIT ? OFFSET ?`

	chefs := []model.ChefRecord{}
	if err := conn.SelectContext(ctx, &chefs, r.DB.Rebind(query), limit, f.Offset()); err != nil {
		return nil, 0, apperr.Repository("list", "chefs", err)
	}

	return chefs, count, nil
}
