package seed

import (
	"context"
	"time"

	"github.com/Nomet5/cake-app-sub003/internal/model"
)

func ptr[T any](v T) *T { return &v }

// Demo fills an empty database with a small storefront.
func (s *Seeder) Demo(ctx context.Context) error {
	now := s.Now()
	day := 24 * time.Hour

	users := []*model.User{
		{FirstName: "Анна", LastName: ptr("Смирнова"), Email: "anna@example.com", Phone: ptr("+7 900 000-00-01")},
		{FirstName: "Игорь", LastName: ptr("Петров"), Email: "igor@example.com", Phone: ptr("+7 900 000-00-02")},
		{FirstName: "Мария", Email: "maria@example.com"},
	}
	for _, u := range users {
		if err := s.User(ctx, u); err != nil {
			return err
		}
	}

	cats := []*model.Category{
		{Name: "Торты", SortOrder: 1, IsActive: true, Description: ptr("Праздничные и повседневные торты")},
		{Name: "Хлеб", SortOrder: 2, IsActive: true},
		{Name: "Пироги", SortOrder: 3, IsActive: true},
		{Name: "Сезонное", SortOrder: 4, IsActive: false},
	}
	for _, c := range cats {
		if err := s.Category(ctx, c); err != nil {
			return err
		}
	}

	chefs := []*model.Chef{
		{UserID: users[0].ID, BusinessName: "Сладкий дом", Specialty: ptr("Торты"), IsActive: true, IsVerified: true},
		{UserID: users[1].ID, BusinessName: "Пекарня Игоря", Specialty: ptr("Хлеб на закваске"), IsActive: true, IsVerified: true},
		{UserID: users[2].ID, BusinessName: "Бабушкины пироги", Specialty: ptr("Пироги"), IsActive: true, IsVerified: false},
	}
	for _, c := range chefs {
		if err := s.Chef(ctx, c); err != nil {
			return err
		}
	}

	products := []*model.Product{
		{Name: "Шоколадный торт", Description: ptr("Три слоя бисквита с ганашем"), Price: 1450, ChefID: &chefs[0].ID, CategoryID: &cats[0].ID},
		{Name: "Медовик", Description: ptr("Классический медовый торт"), Price: 1200, ChefID: &chefs[0].ID, CategoryID: &cats[0].ID},
		{Name: "Чизкейк", Price: 1100, ChefID: &chefs[0].ID, CategoryID: &cats[0].ID},
		{Name: "Бородинский хлеб", Description: ptr("Ржаной хлеб с кориандром"), Price: 180, ChefID: &chefs[1].ID, CategoryID: &cats[1].ID},
		{Name: "Чиабатта", Price: 150, ChefID: &chefs[1].ID, CategoryID: &cats[1].ID},
		{Name: "Пирог с вишней", Description: ptr("Песочное тесто и свежая вишня"), Price: 650, ChefID: &chefs[2].ID, CategoryID: &cats[2].ID},
		{Name: "Тыквенный пирог", Price: 700, ChefID: &chefs[2].ID, CategoryID: &cats[3].ID},
		{Name: "Печенье с шоколадом", Description: ptr("Хрустящее печенье"), Price: 300, ChefID: &chefs[0].ID},
	}
	for i, p := range products {
		p.IsAvailable = i != 4
		p.CreatedAt = now.Add(-time.Duration(i*3) * day)
		if err := s.Product(ctx, p); err != nil {
			return err
		}
		if err := s.Image(ctx, &model.ProductImage{ProductID: p.ID, URL: "/images/products/" + p.ID + ".jpg", IsPrimary: i%3 != 2}); err != nil {
			return err
		}
	}

	ratings := map[int][]int{0: {5, 5, 4}, 1: {4, 5}, 3: {5}, 5: {3, 4, 5}}
	for i, rs := range ratings {
		for _, rating := range rs {
			if err := s.Review(ctx, &model.Review{ProductID: products[i].ID, Rating: rating, UserID: &users[2].ID}); err != nil {
				return err
			}
		}
	}

	for i, n := range map[int]int{0: 8, 3: 6, 5: 2} {
		for j := 0; j < n; j++ {
			if err := s.OrderItem(ctx, &model.OrderItem{ProductID: products[i].ID}); err != nil {
				return err
			}
		}
	}

	return nil
}
