package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/chef"
	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/derive"
	"github.com/Nomet5/cake-app-sub003/internal/query"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

// Options are the chef card placeholders.
type Options struct {
	DefaultLimit  int
	DefaultRating float64
	DeliveryTime  string
	Distance      string
}

func DefaultOptions() Options {
	return Options{
		DefaultLimit:  chef.DefaultLimit,
		DefaultRating: 4.5,
		DeliveryTime:  "30-45 мин",
		Distance:      "1.5 км",
	}
}

type chefUseCase struct {
	repo   chef.Repository
	opts   Options
	logger logger.ZapLogger
}

func NewChefUseCase(repo chef.Repository, opts Options, log logger.ZapLogger) chef.UseCase {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = chef.DefaultLimit
	}
	return &chefUseCase{
		repo:   repo,
		opts:   opts,
		logger: log,
	}
}

func (uc *chefUseCase) ListChefs(ctx context.Context, params dto.ChefParams) ([]dto.ChefView, envelope.Pagination, error) {
	filters := &dto.ChefFilters{
		Limit: query.PositiveInt(params.Limit, uc.opts.DefaultLimit),
		Page:  query.PositiveInt(params.Page, 1),
	}

	records, count, err := uc.repo.FindPublic(ctx, filters)
	if err != nil {
		if apperr.Classify(err) == apperr.KindUnknown {
			err = apperr.Repository("list", "chefs", err)
		}
		uc.logger.Error("failed to list chefs",
			zap.Int("page", filters.Page),
			zap.Int("limit", filters.Limit),
			zap.Error(err),
		)
		return nil, envelope.Pagination{}, err
	}

	views := make([]dto.ChefView, 0, len(records))
	for _, rec := range records {
		views = append(views, uc.view(rec))
	}

	return views, envelope.Paginate(filters.Page, filters.Limit, count, uc.opts.DefaultLimit), nil
}

func (uc *chefUseCase) view(rec model.ChefRecord) dto.ChefView {
	rating := uc.opts.DefaultRating
	if rec.AverageRating != nil && rec.ReviewCount > 0 {
		rating = derive.Round1(*rec.AverageRating)
	}
	return dto.ChefView{
		ID:           rec.ID,
		BusinessName: rec.BusinessName,
		Specialty:    rec.Specialty,
		Description:  rec.Description,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		Email:        rec.Email,
		Phone:        rec.Phone,
		Rating:       rating,
		Reviews:      rec.ReviewCount,
		Products:     rec.ProductCount,
		DeliveryTime: uc.opts.DeliveryTime,
		Distance:     uc.opts.Distance,
		IsVerified:   rec.IsVerified,
	}
}
