package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
	"github.com/fekuna/omnipos-purchase-service/internal/model"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.PurchasedProduct) error {
	query := `
        INSERT INTO purchased_products (
            id, user_id, purchase_id, product_id, name, tags,
            price, quantity, purchased_at, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :purchase_id, :product_id, :name, :tags,
            :price, :quantity, :purchased_at, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return errors.Wrap(err, "insert purchased product")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.PurchasedProduct, error) {
	var p model.PurchasedProduct
	query := `SELECT * FROM purchased_products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("purchased product %s: %w", id, apierr.ErrNotFound)
		}
		return nil, errors.Wrap(err, "find purchased product")
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.PurchaseFilters) ([]model.PurchasedProduct, int, error) {
	whereClause, args := buildWhere(f)

	var count int
	countQuery, countArgs, err := r.bind("SELECT count(*) FROM purchased_products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, errors.Wrap(err, "count purchased products")
	}

	query := "SELECT * FROM purchased_products" + whereClause + " ORDER BY purchased_at DESC, id"
	if f.PageSize > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, f.Offset())
	}
	listQuery, listArgs, err := r.bind(query, args)
	if err != nil {
		return nil, 0, err
	}

	products := []model.PurchasedProduct{}
	if err := r.DB.SelectContext(ctx, &products, listQuery, listArgs...); err != nil {
		return nil, 0, errors.Wrap(err, "list purchased products")
	}
	return products, count, nil
}

func (r *PGRepository) bind(query string, args map[string]interface{}) (string, []interface{}, error) {
	q, list, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, errors.Wrap(err, "bind named query")
	}
	return r.DB.Rebind(q), list, nil
}

// buildWhere turns filters into a WHERE clause with named parameters. Tags
// match on overlap, product ids on membership.
func buildWhere(f *dto.PurchaseFilters) (string, map[string]interface{}) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.UserID != "" {
		conditions = append(conditions, "user_id = :user_id")
		args["user_id"] = f.UserID
	}
	if len(f.Tags) > 0 {
		conditions = append(conditions, "tags && :tags")
		args["tags"] = pq.StringArray(f.Tags)
	}
	if len(f.ProductIDs) > 0 {
		conditions = append(conditions, "product_id = ANY(:product_ids)")
		args["product_ids"] = pq.StringArray(f.ProductIDs)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
