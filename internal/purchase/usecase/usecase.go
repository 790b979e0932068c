package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
	"github.com/fekuna/omnipos-purchase-service/internal/cache"
	"github.com/fekuna/omnipos-purchase-service/internal/logger"
	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/fekuna/omnipos-purchase-service/internal/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type purchaseUseCase struct {
	repo   purchase.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

// NewPurchaseUseCase wires the usecase. A nil cache disables list caching.
func NewPurchaseUseCase(repo purchase.Repository, cache *cache.RedisClient, log logger.ZapLogger) purchase.UseCase {
	return &purchaseUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

type cachedList struct {
	Products []model.PurchasedProduct
	Count    int
}

func (uc *purchaseUseCase) ListPurchasedProducts(ctx context.Context, userID string, params map[string]any, page, pageSize int) ([]model.PurchasedProduct, int, error) {
	qp, err := query.NewPurchasedProductParams(params)
	if err != nil {
		uc.logger.Debug("rejected purchased product filters", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	filters, err := dto.FiltersFromParams(userID, qp)
	if err != nil {
		return nil, 0, err
	}
	filters.Page = page
	filters.PageSize = pageSize
	filters.Normalize()

	cacheKey, err := generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result cachedList
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	uc.logger.Debug("listing purchased products", zap.String("user_id", userID), zap.Stringer("params", qp))
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" && uc.cache != nil {
		if data, err := json.Marshal(cachedList{Products: products, Count: count}); err == nil {
			if err := uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache purchased products", zap.Error(err))
			}
		}
	}

	return products, count, nil
}

func generateCacheKey(filters *dto.PurchaseFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("purchases:list:%s:%x", filters.UserID, md5.Sum(data)), nil
}

func (uc *purchaseUseCase) invalidateListCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("purchases:list:%s:*", userID)
	if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
		uc.logger.Warn("failed to invalidate purchase cache", zap.String("user_id", userID), zap.Error(err))
	}
}

// GetPurchasedProduct reports ids that are not uuids as not found; the id
// column is a uuid and postgres rejects anything else.
func (uc *purchaseUseCase) GetPurchasedProduct(ctx context.Context, id string) (*model.PurchasedProduct, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("purchased product %q: %w", id, apierr.ErrNotFound)
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *purchaseUseCase) RecordPurchase(ctx context.Context, input *dto.RecordPurchaseInput) (*model.PurchasedProduct, error) {
	now := time.Now()
	purchasedAt := input.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = now
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	p := &model.PurchasedProduct{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		UserID:      input.UserID,
		PurchaseID:  input.PurchaseID,
		ProductID:   input.ProductID,
		Name:        input.Name,
		Tags:        tags,
		Price:       input.Price,
		Quantity:    input.Quantity,
		PurchasedAt: purchasedAt,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background(), p.UserID)

	return p, nil
}
