package handler

import (
	"context"
	"math"
	"time"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
	"github.com/fekuna/omnipos-purchase-service/internal/auth"
	"github.com/fekuna/omnipos-purchase-service/internal/logger"
	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type PurchaseHandler struct {
	uc     purchase.UseCase
	logger logger.ZapLogger
}

func NewPurchaseHandler(uc purchase.UseCase, log logger.ZapLogger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: log,
	}
}

// ListPurchasedProducts expects {"filters": {...}, "page": n, "page_size": n}.
func (h *PurchaseHandler) ListPurchasedProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := auth.GetUserID(ctx)
	if userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	fields := req.GetFields()

	var filters map[string]any
	if v, ok := fields["filters"]; ok {
		sv, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			if _, isNull := v.GetKind().(*structpb.Value_NullValue); !isNull {
				return nil, status.Error(codes.InvalidArgument, "filters must be an object")
			}
		} else {
			filters = sv.StructValue.AsMap()
		}
	}

	page, err := pagingField(fields, "page")
	if err != nil {
		return nil, err
	}
	pageSize, err := pagingField(fields, "page_size")
	if err != nil {
		return nil, err
	}

	products, total, err := h.uc.ListPurchasedProducts(ctx, userID, filters, page, pageSize)
	if err != nil {
		if status.Code(apierr.GRPCStatus(err)) == codes.Internal {
			h.logger.Error("failed to list purchased products", zap.String("user_id", userID), zap.Error(err))
		}
		return nil, apierr.GRPCStatus(err)
	}

	items := make([]any, len(products))
	for i := range products {
		items[i] = mapPurchasedProduct(&products[i])
	}

	resp, err := structpb.NewStruct(map[string]any{
		"products": items,
		"total":    total,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

// GetPurchasedProduct only returns rows owned by the calling user. Rows owned
// by someone else are reported as not found.
func (h *PurchaseHandler) GetPurchasedProduct(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	userID := auth.GetUserID(ctx)
	if userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if _, err := uuid.Parse(req.GetValue()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "id %q is not a valid uuid", req.GetValue())
	}

	p, err := h.uc.GetPurchasedProduct(ctx, req.GetValue())
	if err != nil {
		return nil, apierr.GRPCStatus(err)
	}
	if p.UserID != userID {
		return nil, status.Error(codes.NotFound, "purchased product not found")
	}

	resp, err := structpb.NewStruct(mapPurchasedProduct(p))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

// pagingField reads a non-negative whole number no larger than dto.MaxPage.
// A missing field reads as 0 and is defaulted later by dto.Normalize.
func pagingField(fields map[string]*structpb.Value, key string) (int, error) {
	v, ok := fields[key]
	if !ok {
		return 0, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return 0, nil
	}

	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", key)
	}
	f := n.NumberValue
	if !(f >= 0 && f <= dto.MaxPage) || f != math.Trunc(f) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a whole number between 0 and %d", key, dto.MaxPage)
	}
	return int(f), nil
}

// Helper
func mapPurchasedProduct(m *model.PurchasedProduct) map[string]any {
	tags := make([]any, len(m.Tags))
	for i, t := range m.Tags {
		tags[i] = t
	}

	return map[string]any{
		"id":           m.ID,
		"user_id":      m.UserID,
		"purchase_id":  m.PurchaseID,
		"product_id":   m.ProductID,
		"name":         m.Name,
		"tags":         tags,
		"price":        m.Price,
		"quantity":     m.Quantity,
		"purchased_at": m.PurchasedAt.UTC().Format(time.RFC3339),
	}
}
