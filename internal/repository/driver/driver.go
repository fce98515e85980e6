package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = "id, name, phone, driver_status, vehicle_type, created_at, updated_at"

// Repository хранит водителей в общей таблице users с ролью DRIVER.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, id uuid.UUID, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO users (id, name, phone, role, driver_status, vehicle_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + driverColumns

	driverModel, err := scanDriver(r.querier.QueryRow(
		ctx,
		query,
		id,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		entities.RoleDriver.String(),
		driverModifyModel.Status,
		driverModifyModel.VehicleType,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("driver_status", driverModifyModel.Status)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID, "role": entities.RoleDriver.String()}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM users
		WHERE id = $1 AND role = $2`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, id, entities.RoleDriver.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context, status *entities.DriverStatus) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns).
		From("users").
		Where(sq.Eq{"role": entities.RoleDriver.String()}).
		OrderBy("created_at", "id")

	if status != nil {
		builder = builder.Where(sq.Eq{"driver_status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverModel, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, *driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var m DriverDB
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Phone,
		&m.Status,
		&m.VehicleType,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
