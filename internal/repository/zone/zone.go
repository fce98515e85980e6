package zone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/zone"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const zoneColumns = `id, name, polygon, status, priority, delivery_fee, neighborhoods, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, id uuid.UUID, zoneModifyEntity entities.ZoneModify) (*entities.Zone, error) {
	zoneModifyModel := FromDomainModify(&zoneModifyEntity)

	polygon, err := json.Marshal(zoneModifyModel.Polygon)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	neighborhoods := zoneModifyModel.Neighborhoods
	if neighborhoods == nil {
		neighborhoods = []string{}
	}

	query := `INSERT INTO delivery_zones (id, name, polygon, status, priority, delivery_fee, neighborhoods)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + zoneColumns

	zoneModel, err := scanZone(r.querier.QueryRow(
		ctx,
		query,
		id,
		zoneModifyModel.Name,
		polygon,
		zoneModifyModel.Status,
		zoneModifyModel.Priority,
		zoneModifyModel.DeliveryFee,
		neighborhoods,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	return ToDomain(zoneModel), nil
}

func (r *Repository) Update(ctx context.Context, zoneModifyEntity entities.ZoneModify) (*entities.Zone, error) {
	zoneModifyModel := FromDomainModify(&zoneModifyEntity)

	builder := qb.
		Update("delivery_zones")

	// опционные поля
	if zoneModifyModel.Name != nil {
		builder = builder.Set("name", zoneModifyModel.Name)
	}
	if zoneModifyModel.Polygon != nil {
		polygon, err := json.Marshal(zoneModifyModel.Polygon)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
		}
		builder = builder.Set("polygon", polygon)
	}
	if zoneModifyModel.Status != nil {
		builder = builder.Set("status", zoneModifyModel.Status)
	}
	if zoneModifyModel.Priority != nil {
		builder = builder.Set("priority", zoneModifyModel.Priority)
	}
	if zoneModifyModel.DeliveryFee != nil {
		builder = builder.Set("delivery_fee", zoneModifyModel.DeliveryFee)
	}
	if zoneModifyModel.Neighborhoods != nil {
		builder = builder.Set("neighborhoods", zoneModifyModel.Neighborhoods)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": zoneModifyModel.ID}).
		Suffix("RETURNING " + zoneColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	zoneModel, err := scanZone(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	return ToDomain(zoneModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM delivery_zones WHERE id = $1`

	zoneModel, err := scanZone(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected zone repository getbyid error: %w", err)
	}

	return ToDomain(zoneModel), nil
}

// List возвращает зоны, при непустом status только с этим статусом.
func (r *Repository) List(ctx context.Context, status *entities.ZoneStatus) ([]entities.Zone, error) {
	builder := qb.
		Select(zoneColumns).
		From("delivery_zones").
		OrderBy("priority DESC", "delivery_fee", "id")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository list error: %w", err)
	}
	defer rows.Close()

	zoneModels := make([]ZoneDB, 0, 8)
	for rows.Next() {
		zoneModel, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository list error: %w", err)
		}
		zoneModels = append(zoneModels, *zoneModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository list error: %w", err)
	}

	return ToDomainList(zoneModels), nil
}

func scanZone(row pgx.Row) (*ZoneDB, error) {
	var (
		m       ZoneDB
		polygon []byte
	)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&polygon,
		&m.Status,
		&m.Priority,
		&m.DeliveryFee,
		&m.Neighborhoods,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(polygon, &m.Polygon); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}
	return &m, nil
}
