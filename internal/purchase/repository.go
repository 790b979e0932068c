package purchase

import (
	"context"

	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.PurchasedProduct) error
	FindByID(ctx context.Context, id string) (*model.PurchasedProduct, error)
	FindAll(ctx context.Context, filters *dto.PurchaseFilters) ([]model.PurchasedProduct, int, error)
}
