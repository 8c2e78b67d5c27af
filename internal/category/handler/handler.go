package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Nomet5/cake-app-sub003/internal/catalogv1"
	"github.com/Nomet5/cake-app-sub003/internal/category"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

// ListCategories takes no parameters; request fields are ignored.
func (h *CategoryHandler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	categories, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, catalogv1.StatusError(err)
	}

	resp, err := catalogv1.ToStruct(envelope.Success(categories, envelope.Meta{Total: len(categories)}))
	if err != nil {
		h.logger.Error("failed to encode categories response", zap.Error(err))
		return nil, catalogv1.StatusError(err)
	}
	return resp, nil
}
