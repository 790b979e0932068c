package purchase

import (
	"context"

	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
)

type UseCase interface {
	// ListPurchasedProducts validates params before touching storage.
	ListPurchasedProducts(ctx context.Context, userID string, params map[string]any, page, pageSize int) ([]model.PurchasedProduct, int, error)
	GetPurchasedProduct(ctx context.Context, id string) (*model.PurchasedProduct, error)
	RecordPurchase(ctx context.Context, input *dto.RecordPurchaseInput) (*model.PurchasedProduct, error)
}
