package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/product/filter"
	"github.com/Nomet5/cake-app-sub003/pkg/database"
)

const selectColumns = `
    SELECT p.id, p.chef_id, p.category_id, p.name, p.description, p.price,
           p.is_available, p.created_at,
           ch.business_name AS chef_name,
           u.first_name AS chef_first_name,
           c.name AS category_name,
           (SELECT COUNT(*) FROM reviews r WHERE r.product_id = p.id) AS review_count,
           (SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = p.id) AS order_item_count`

const fromJoins = `
    FROM products p
    LEFT JOIN chefs ch ON ch.id = p.chef_id
    LEFT JOIN users u ON u.id = ch.user_id
    LEFT JOIN categories c ON c.id = p.category_id`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductRecord, int, error) {
	// One pooled connection serves the count, the page and its relations.
	conn, err := r.DB.Connx(ctx)
	if err != nil {
		return nil, 0, apperr.Repository("acquire connection", "products", err)
	}
	defer conn.Close()

	conditions := []string{"p.is_available = TRUE"}
	args := []interface{}{}

	if f.Search != "" {
		lower := database.LowerFunc(r.DB.DriverName())
		conditions = append(conditions, fmt.Sprintf(
			`(%[1]s(p.name) LIKE ? ESCAPE '\' OR %[1]s(COALESCE(p.description, '')) LIKE ? ESCAPE '\')`, lower))
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		args = append(args, pattern, pattern)
	}
	if names := f.CategoryNames(); len(names) > 0 {
		conditions = append(conditions, "c.name IN (?)")
		args = append(args, names)
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	// Count
	countQuery, countArgs, err := sqlx.In("SELECT COUNT(*)"+fromJoins+whereClause, args...)
	if err != nil {
		return nil, 0, apperr.Repository("build count", "products", err)
	}
	var count int
	if err := conn.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, apperr.Repository("count", "products", err)
	}

	// List
	limit := f.Limit
	if limit <= 0 {
		limit = filter.DefaultLimit
	}
	listArgs := append(append([]interface{}{}, args...), limit, f.Offset())

	query, queryArgs, err := sqlx.In(
		selectColumns+fromJoins+whereClause+" ORDER BY "+orderBy(f)+" LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, apperr.Repository("build list", "products", err)
	}

	products := []model.ProductRecord{}
	if err := conn.SelectContext(ctx, &products, r.DB.Rebind(query), queryArgs...); err != nil {
		return nil, 0, apperr.Repository("list", "products", err)
	}

	if err := r.loadRelations(ctx, conn, products); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) loadRelations(ctx context.Context, conn *sqlx.Conn, products []model.ProductRecord) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	// Primary images
	query, args, err := sqlx.In(`
        SELECT id, product_id, url, is_primary, sort_order
        FROM product_images
        WHERE product_id IN (?) AND is_primary = TRUE
        ORDER BY sort_order ASC, id ASC
    `, ids)
	if err != nil {
		return apperr.Repository("build images", "products", err)
	}
	var images []model.ProductImage
	if err := conn.SelectContext(ctx, &images, r.DB.Rebind(query), args...); err != nil {
		return apperr.Repository("list images", "products", err)
	}
	for _, img := range images {
		i := index[img.ProductID]
		products[i].Images = append(products[i].Images, img)
	}

	// Review ratings
	query, args, err = sqlx.In(`
        SELECT product_id, rating
        FROM reviews
        WHERE product_id IN (?)
        ORDER BY created_at ASC, id ASC
    `, ids)
	if err != nil {
		return apperr.Repository("build reviews", "products", err)
	}
	var ratings []struct {
		ProductID string `db:"product_id"`
		Rating    int    `db:"rating"`
	}
	if err := conn.SelectContext(ctx, &ratings, r.DB.Rebind(query), args...); err != nil {
		return apperr.Repository("list reviews", "products", err)
	}
	for _, rt := range ratings {
		i := index[rt.ProductID]
		products[i].Ratings = append(products[i].Ratings, rt.Rating)
	}

	return nil
}

func orderBy(f *dto.ProductFilters) string {
	order := "p.created_at DESC"
	if f.SortBy != "" {
		// Prevent SQL injection by whitelisting fields
		switch f.SortBy {
		case "name":
			order = "p.name"
		case "price":
			order = "p.price"
		default:
			order = "p.created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			order += " ASC"
		} else {
			order += " DESC"
		}
	}
	return order + ", p.id ASC"
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
