package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Nomet5/cake-app-sub003/internal/catalogv1"
	"github.com/Nomet5/cake-app-sub003/internal/chef"
	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type ChefHandler struct {
	uc     chef.UseCase
	logger logger.ZapLogger
}

func NewChefHandler(uc chef.UseCase, log logger.ZapLogger) *ChefHandler {
	return &ChefHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ChefHandler) ListChefs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := catalogv1.ParamsFromStruct(req, "limit", "page")
	if err != nil {
		h.logger.Warn("invalid list chefs request", zap.Error(err))
		return nil, catalogv1.StatusError(err)
	}

	chefs, page, err := h.uc.ListChefs(ctx, dto.ChefParams{Limit: raw["limit"], Page: raw["page"]})
	if err != nil {
		return nil, catalogv1.StatusError(err)
	}

	resp, err := catalogv1.ToStruct(envelope.Success(chefs, page.Meta()))
	if err != nil {
		h.logger.Error("failed to encode chefs response", zap.Error(err))
		return nil, catalogv1.StatusError(err)
	}
	return resp, nil
}
