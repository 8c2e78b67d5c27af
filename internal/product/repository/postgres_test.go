package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/seed"
	"github.com/Nomet5/cake-app-sub003/internal/testdb"
)

var base = time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *PGRepository
	seeder   *seed.Seeder
	chef     *model.Chef
	cats     map[string]*model.Category
	products map[string]*model.Product
}

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, s := testdb.Seeder(t)

	f := &fixture{
		repo:     NewPGRepository(db),
		seeder:   s,
		cats:     map[string]*model.Category{},
		products: map[string]*model.Product{},
	}

	user := &model.User{FirstName: "Анна", Email: "anna@example.com"}
	require.NoError(t, s.User(ctx, user))
	f.chef = &model.Chef{UserID: user.ID, BusinessName: "Сладкий дом", IsActive: true, IsVerified: true}
	require.NoError(t, s.Chef(ctx, f.chef))

	for i, name := range []string{"Cakes", "Bread", "Pies"} {
		c := &model.Category{Name: name, SortOrder: i, IsActive: true}
		require.NoError(t, s.Category(ctx, c))
		f.cats[name] = c
	}
	return f
}

func (f *fixture) add(t *testing.T, name, category string, age time.Duration, mut ...func(*model.Product)) *model.Product {
	t.Helper()
	p := &model.Product{
		BaseModel:   model.BaseModel{CreatedAt: base.Add(-age)},
		ChefID:      &f.chef.ID,
		Name:        name,
		Price:       100,
		IsAvailable: true,
	}
	if c, ok := f.cats[category]; ok {
		p.CategoryID = &c.ID
	}
	for _, m := range mut {
		m(p)
	}
	require.NoError(t, f.seeder.Product(context.Background(), p))
	f.products[name] = p
	return p
}

func names(records []model.ProductRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestFindAll_SearchLimitOrder(t *testing.T) {
	f := newFixture(t)
	for i := 1; i <= 5; i++ {
		f.add(t, fmt.Sprintf("Choco cake %d", i), "Cakes", time.Duration(i)*time.Hour)
	}
	f.add(t, "Rye bread", "Bread", time.Minute)
	f.add(t, "Choco hidden", "Cakes", 0, func(p *model.Product) { p.IsAvailable = false })

	records, count, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{Search: "choco", Limit: 2, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 5, count)
	assert.Equal(t, []string{"Choco cake 1", "Choco cake 2"}, names(records))
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
}

func TestFindAll_OnlyAvailable(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Visible", "Cakes", time.Hour)
	f.add(t, "Hidden", "Cakes", 0, func(p *model.Product) { p.IsAvailable = false })

	records, count, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Visible"}, names(records))
}

func TestFindAll_SearchMatchesDescriptionCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Brownie", "Cakes", time.Hour, func(p *model.Product) { p.Description = ptr("Dark CHOCOLATE squares") })
	f.add(t, "Baguette", "Bread", 2*time.Hour)

	records, _, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{Search: "Chocolate"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Brownie"}, names(records))
}

func TestFindAll_SearchCyrillicMixedCase(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Торт Наполеон", "Cakes", time.Hour)
	f.add(t, "Хлеб", "Bread", 2*time.Hour, func(p *model.Product) { p.Description = ptr("Ржаной, на ЗАКВАСКЕ") })

	tests := []struct {
		search string
		want   []string
	}{
		{"торт", []string{"Торт Наполеон"}},
		{"Торт", []string{"Торт Наполеон"}},
		{"Наполеон", []string{"Торт Наполеон"}},
		{"НАПОЛЕОН", []string{"Торт Наполеон"}},
		{"закваске", []string{"Хлеб"}},
		{"пирог", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			records, count, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
			assert.Equal(t, tt.want, names(records))
		})
	}
}

func TestFindAll_SearchEscapesWildcards(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Sale 50% off", "Cakes", time.Hour)
	f.add(t, "Plain", "Cakes", 2*time.Hour)

	records, _, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sale 50% off"}, names(records))
}

func TestFindAll_CategoryFilters(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Napoleon", "Cakes", time.Hour)
	f.add(t, "Sourdough", "Bread", 2*time.Hour)
	f.add(t, "Cherry pie", "Pies", 3*time.Hour)
	f.add(t, "Loose cookie", "", 4*time.Hour)

	ctx := context.Background()

	records, _, err := f.repo.FindAll(ctx, &dto.ProductFilters{Category: "Cakes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Napoleon"}, names(records))

	// Category is ignored once Categories is set
	records, count, err := f.repo.FindAll(ctx, &dto.ProductFilters{Category: "Cakes", Categories: []string{"Bread", "Pies"}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"Sourdough", "Cherry pie"}, names(records))

	records, _, err = f.repo.FindAll(ctx, &dto.ProductFilters{Category: "Nope"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFindAll_JoinsRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.add(t, "Napoleon", "Cakes", time.Hour)
	bare := f.add(t, "Bare", "", 2*time.Hour, func(p *model.Product) { p.ChefID = nil })

	require.NoError(t, f.seeder.Image(ctx, &model.ProductImage{ProductID: p.ID, URL: "/side.jpg", SortOrder: 0}))
	require.NoError(t, f.seeder.Image(ctx, &model.ProductImage{ProductID: p.ID, URL: "/main.jpg", IsPrimary: true, SortOrder: 1}))
	for i, rating := range []int{3, 4, 5} {
		require.NoError(t, f.seeder.Review(ctx, &model.Review{
			BaseModel: model.BaseModel{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			ProductID: p.ID,
			Rating:    rating,
		}))
	}
	for i := 0; i < 7; i++ {
		require.NoError(t, f.seeder.OrderItem(ctx, &model.OrderItem{ProductID: p.ID}))
	}

	records, _, err := f.repo.FindAll(ctx, &dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Сладкий дом", *got.ChefName)
	assert.Equal(t, "Анна", *got.ChefFirstName)
	assert.Equal(t, "Cakes", *got.CategoryName)
	assert.Equal(t, 3, got.ReviewCount)
	assert.Equal(t, 7, got.OrderItemCount)
	assert.Equal(t, []int{3, 4, 5}, got.Ratings)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "/main.jpg", got.Images[0].URL)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))

	empty := records[1]
	assert.Equal(t, bare.ID, empty.ID)
	assert.Nil(t, empty.ChefName)
	assert.Nil(t, empty.CategoryName)
	assert.Empty(t, empty.Images)
	assert.Empty(t, empty.Ratings)
	assert.Zero(t, empty.ReviewCount)
}

func TestFindAll_PageAndSortOverride(t *testing.T) {
	f := newFixture(t)
	f.add(t, "A", "Cakes", time.Hour, func(p *model.Product) { p.Price = 300 })
	f.add(t, "B", "Cakes", 2*time.Hour, func(p *model.Product) { p.Price = 100 })
	f.add(t, "C", "Cakes", 3*time.Hour, func(p *model.Product) { p.Price = 200 })

	ctx := context.Background()

	records, count, err := f.repo.FindAll(ctx, &dto.ProductFilters{Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"C"}, names(records))

	records, _, err = f.repo.FindAll(ctx, &dto.ProductFilters{SortBy: "price", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(records))

	records, _, err = f.repo.FindAll(ctx, &dto.ProductFilters{SortBy: "price; DROP TABLE products"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(records), "unknown sort keys fall back to created_at")
}

func TestFindAll_StorageFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repo.DB.Close())

	_, _, err := f.repo.FindAll(context.Background(), &dto.ProductFilters{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindRepository, apperr.Classify(err))
}
