package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catDTO "github.com/Nomet5/cake-app-sub003/internal/category/dto"
	catRepo "github.com/Nomet5/cake-app-sub003/internal/category/repository"
	catUC "github.com/Nomet5/cake-app-sub003/internal/category/usecase"
	chefDTO "github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	chefRepo "github.com/Nomet5/cake-app-sub003/internal/chef/repository"
	chefUC "github.com/Nomet5/cake-app-sub003/internal/chef/usecase"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/derive"
	productDTO "github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/product/filter"
	prodRepo "github.com/Nomet5/cake-app-sub003/internal/product/repository"
	prodUC "github.com/Nomet5/cake-app-sub003/internal/product/usecase"
	"github.com/Nomet5/cake-app-sub003/internal/seed"
	"github.com/Nomet5/cake-app-sub003/internal/testdb"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type response struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *string         `json:"error"`
	Code      string          `json:"code"`
	Meta      envelope.Meta   `json:"meta"`
	Timestamp string          `json:"timestamp"`
}

func newHandler(db *sqlx.DB) http.Handler {
	log := logger.NewNop()
	products := prodUC.NewProductUseCase(prodRepo.NewPGRepository(db),
		filter.NewResolver(filter.DefaultLimit), derive.NewEngine(derive.DefaultOptions()), log)
	categories := catUC.NewCategoryUseCase(catRepo.NewPGRepository(db), log)
	chefs := chefUC.NewChefUseCase(chefRepo.NewPGRepository(db), chefUC.DefaultOptions(), log)
	return NewServer(products, categories, chefs, db, Options{}, log).Router()
}

func get(t *testing.T, h http.Handler, target string) (int, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	require.NoError(t, err, "timestamp must be RFC 3339")
	return rec.Code, body
}

func seedChocolate(t *testing.T, s *seed.Seeder) {
	t.Helper()
	ctx := context.Background()

	u := &model.User{FirstName: "Анна", Email: "anna@example.com"}
	require.NoError(t, s.User(ctx, u))
	c := &model.Chef{UserID: u.ID, BusinessName: "Сладкий дом", IsActive: true, IsVerified: true}
	require.NoError(t, s.Chef(ctx, c))
	cakes := &model.Category{Name: "Cakes", IsActive: true}
	require.NoError(t, s.Category(ctx, cakes))

	base := time.Now().UTC().Add(-time.Hour)
	for i := 1; i <= 5; i++ {
		p := &model.Product{
			BaseModel:   model.BaseModel{CreatedAt: base.Add(-time.Duration(i) * 24 * time.Hour)},
			ChefID:      &c.ID,
			Name:        fmt.Sprintf("Choco treat %d", i),
			Price:       float64(100 * i),
			IsAvailable: true,
		}
		// the newest one has no category to exercise the fallback
		if i > 1 {
			p.CategoryID = &cakes.ID
		}
		require.NoError(t, s.Product(ctx, p))
	}
	require.NoError(t, s.Product(ctx, &model.Product{ChefID: &c.ID, Name: "Vanilla", Price: 50, IsAvailable: true}))
}

func TestProducts_SearchEndToEnd(t *testing.T) {
	db, s := testdb.Seeder(t)
	seedChocolate(t, s)

	code, body := get(t, newHandler(db), "/api/products?search=choco&limit=2")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.Equal(t, envelope.Meta{Page: 1, Limit: 2, Total: 5, Pages: 3}, body.Meta)

	var products []productDTO.ProductView
	require.NoError(t, json.Unmarshal(body.Data, &products))
	require.Len(t, products, 2)

	assert.Equal(t, "Choco treat 1", products[0].Name)
	assert.Equal(t, "Choco treat 2", products[1].Name)
	assert.True(t, products[0].CreatedAt.After(products[1].CreatedAt))

	assert.Equal(t, "Без категории", products[0].Category)
	assert.Equal(t, "Cakes", products[1].Category)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Reviews, 0)
		assert.NotEmpty(t, p.Category)
		assert.Equal(t, 4.5, p.Rating)
		assert.True(t, p.IsNew)
		assert.Nil(t, p.Image)
	}
}

func TestProducts_PageAndInvalidLimit(t *testing.T) {
	db, s := testdb.Seeder(t)
	seedChocolate(t, s)
	h := newHandler(db)

	_, body := get(t, h, "/api/products?search=choco&limit=2&page=3")
	var products []productDTO.ProductView
	require.NoError(t, json.Unmarshal(body.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Choco treat 5", products[0].Name)

	_, body = get(t, h, "/api/products?limit=abc")
	require.NoError(t, json.Unmarshal(body.Data, &products))
	assert.Len(t, products, 6)
	assert.Equal(t, 50, body.Meta.Limit)
}

func TestProducts_CategoriesPrecedence(t *testing.T) {
	db, s := testdb.Seeder(t)
	require.NoError(t, s.Demo(context.Background()))

	_, body := get(t, newHandler(db), "/api/products?category=%D0%A2%D0%BE%D1%80%D1%82%D1%8B&categories=%D0%A5%D0%BB%D0%B5%D0%B1,%20%D0%9F%D0%B8%D1%80%D0%BE%D0%B3%D0%B8")

	var products []productDTO.ProductView
	require.NoError(t, json.Unmarshal(body.Data, &products))
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Contains(t, []string{"Хлеб", "Пироги"}, p.Category)
	}
}

func TestProducts_SearchCyrillicDemo(t *testing.T) {
	db, s := testdb.Seeder(t)
	require.NoError(t, s.Demo(context.Background()))
	h := newHandler(db)

	for _, search := range []string{"торт", "ТОРТ", "Торт"} {
		t.Run(search, func(t *testing.T) {
			code, body := get(t, h, "/api/products?search="+url.QueryEscape(search))
			require.Equal(t, http.StatusOK, code)

			var products []productDTO.ProductView
			require.NoError(t, json.Unmarshal(body.Data, &products))
			// "Шоколадный торт" by name, "Медовик" by description
			assert.Equal(t, 2, body.Meta.Total)
			require.Len(t, products, 2)
			assert.ElementsMatch(t, []string{"Шоколадный торт", "Медовик"}, []string{products[0].Name, products[1].Name})
		})
	}
}

func TestCategories(t *testing.T) {
	db, s := testdb.Seeder(t)
	require.NoError(t, s.Demo(context.Background()))

	code, body := get(t, newHandler(db), "/api/categories")
	require.Equal(t, http.StatusOK, code)

	var categories []catDTO.CategoryView
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	require.Len(t, categories, 3)

	assert.Equal(t, "Торты", categories[0].Name)
	assert.Equal(t, 3, categories[0].ProductCount)
	assert.Equal(t, "Хлеб", categories[1].Name)
	assert.Equal(t, 1, categories[1].ProductCount, "unavailable bread is not counted")
	assert.Equal(t, "Пироги", categories[2].Name)
	assert.Equal(t, 1, categories[2].ProductCount)
	assert.Equal(t, 3, body.Meta.Total)
}

func TestChefs(t *testing.T) {
	db, s := testdb.Seeder(t)
	require.NoError(t, s.Demo(context.Background()))

	code, body := get(t, newHandler(db), "/api/chefs")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, envelope.Meta{Page: 1, Limit: 50, Total: 2, Pages: 1}, body.Meta)

	var chefs []chefDTO.ChefView
	require.NoError(t, json.Unmarshal(body.Data, &chefs))
	require.Len(t, chefs, 2)

	assert.Equal(t, "Пекарня Игоря", chefs[0].BusinessName)
	assert.Equal(t, 2, chefs[0].Products)
	assert.Equal(t, 1, chefs[0].Reviews)
	assert.Equal(t, 5.0, chefs[0].Rating)

	assert.Equal(t, "Сладкий дом", chefs[1].BusinessName)
	assert.Equal(t, 4, chefs[1].Products)
	assert.Equal(t, 5, chefs[1].Reviews)
	assert.Equal(t, 4.6, chefs[1].Rating)
	assert.Equal(t, "Анна", *chefs[1].FirstName)
	assert.Equal(t, "30-45 мин", chefs[1].DeliveryTime)
	assert.Equal(t, "1.5 км", chefs[1].Distance)
}

func TestFailuresUseGenericEnvelope(t *testing.T) {
	db := testdb.Open(t)
	h := newHandler(db)
	require.NoError(t, db.Close())

	for _, target := range []string{"/api/products", "/api/categories", "/api/chefs?limit=5"} {
		t.Run(target, func(t *testing.T) {
			code, body := get(t, h, target)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, body.Success)
			assert.Equal(t, "null", string(body.Data))
			require.NotNil(t, body.Error)
			assert.Equal(t, envelope.GenericMessage, *body.Error)
			assert.Equal(t, "REPOSITORY_ERROR", body.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	db := testdb.Open(t)
	h := newHandler(db)

	code, body := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)

	require.NoError(t, db.Close())
	code, body = get(t, h, "/health")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, body.Success)
	assert.Equal(t, "UNAVAILABLE", body.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newHandler(testdb.Open(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://shop.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
