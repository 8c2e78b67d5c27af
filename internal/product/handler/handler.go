package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Nomet5/cake-app-sub003/internal/catalogv1"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/product"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := catalogv1.ParamsFromStruct(req, "search", "category", "categories", "limit", "page")
	if err != nil {
		h.logger.Warn("invalid list products request", zap.Error(err))
		return nil, catalogv1.StatusError(err)
	}

	params := dto.ListParams{
		Search:     raw["search"],
		Category:   raw["category"],
		Categories: raw["categories"],
		Limit:      raw["limit"],
		Page:       raw["page"],
	}

	products, page, err := h.uc.ListProducts(ctx, params)
	if err != nil {
		return nil, catalogv1.StatusError(err)
	}

	resp, err := catalogv1.ToStruct(envelope.Success(products, page.Meta()))
	if err != nil {
		h.logger.Error("failed to encode products response", zap.Error(err))
		return nil, catalogv1.StatusError(err)
	}
	return resp, nil
}
