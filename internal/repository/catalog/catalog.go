package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository читает мерчантов и товары. Каталогом управляет внешняя система.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetMerchant(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	query := `SELECT id, owner_user_id, name, latitude, longitude
		FROM merchants
		WHERE id = $1`

	var m entities.Merchant
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&m.ID,
			&m.OwnerUserID,
			&m.Name,
			&m.Location.Latitude,
			&m.Location.Longitude,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository getmerchant error: %w", err)
	}

	return &m, nil
}

// GetProducts возвращает найденные товары мерчанта. Отсутствующие id просто не попадают в результат.
func (r *Repository) GetProducts(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error) {
	query, args, err := qb.
		Select("id", "merchant_id", "name", "price", "available").
		From("products").
		Where(sq.Eq{"merchant_id": merchantID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository getproducts error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository getproducts error: %w", err)
	}
	defer rows.Close()

	products := make(map[uuid.UUID]entities.Product, len(ids))
	for rows.Next() {
		var p entities.Product
		if err := rows.Scan(&p.ID, &p.MerchantID, &p.Name, &p.Price, &p.Available); err != nil {
			return nil, fmt.Errorf("unexpected catalog repository getproducts error: %w", err)
		}
		products[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository getproducts error: %w", err)
	}

	return products, nil
}
