package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `o.id, o.customer_id, o.merchant_id, m.owner_user_id, o.driver_id, o.zone_id,
	o.status, o.pickup_code, o.delivery_code,
	o.subtotal, o.delivery_fee, o.discount, o.total, o.payment_method, o.payment_status,
	o.delivery_latitude, o.delivery_longitude, o.delivery_address,
	o.driver_lat, o.driver_lng, o.driver_location_at,
	o.driver_start_lat, o.driver_start_lng, o.driver_start_at,
	o.delivery_deadline, o.completed_at, o.created_at, o.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o *entities.Order) error {
	query := `INSERT INTO orders (
			id, customer_id, merchant_id, driver_id, zone_id, status, pickup_code, delivery_code,
			subtotal, delivery_fee, discount, total, payment_method, payment_status,
			delivery_latitude, delivery_longitude, delivery_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)`

	_, err := r.querier.Exec(
		ctx,
		query,
		o.ID,
		o.CustomerID,
		o.MerchantID,
		o.DriverID,
		o.ZoneID,
		o.Status.String(),
		o.PickupCode,
		o.DeliveryCode,
		o.Prices.Subtotal,
		o.Prices.DeliveryFee,
		o.Prices.Discount,
		o.Prices.Total,
		o.PaymentMethod.String(),
		o.PaymentStatus.String(),
		o.DeliveryLocation.Latitude,
		o.DeliveryLocation.Longitude,
		o.DeliveryAddress,
		o.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return order.ErrMerchantNotFound
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	builder := qb.Insert("order_items").
		Columns("order_id", "product_id", "name", "quantity", "unit_price")
	for _, item := range o.Items {
		builder = builder.Values(o.ID, item.ProductID, item.Name, item.Quantity, item.UnitPrice)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders o
		JOIN merchants m ON m.id = o.merchant_id
		WHERE o.id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(orderModel, items), nil
}

// Transition выполняет переход одним условным UPDATE: статус, владелец и код
// проверяются в WHERE. Если строка не подошла, возвращается order.ErrNotApplied.
// Подзапрос в RETURNING видит снимок до обновления и отдает прежний статус.
func (r *Repository) Transition(ctx context.Context, cmd entities.TransitionCommand) (*entities.Order, entities.OrderStatus, error) {
	tr := cmd.Transition

	from := make([]string, 0, len(tr.From))
	for _, s := range tr.From {
		from = append(from, s.String())
	}

	builder := qb.
		Update("orders").
		Set("status", tr.To.String()).
		Set("updated_at", cmd.At).
		Where(sq.Eq{"id": cmd.OrderID}).
		Where(sq.Eq{"status": from})

	switch tr.Actor {
	case entities.RoleMerchant:
		builder = builder.Where("merchant_id IN (SELECT id FROM merchants WHERE owner_user_id = ?)", cmd.ActorID)
	case entities.RoleDriver:
		if tr.AssignsDriver {
			builder = builder.Set("driver_id", cmd.ActorID)
		} else {
			builder = builder.Where(sq.Eq{"driver_id": cmd.ActorID})
		}
	}

	switch tr.Code {
	case entities.CodePickup:
		builder = builder.Where("upper(pickup_code) = ?", cmd.Code)
	case entities.CodeDelivery:
		builder = builder.Where("upper(delivery_code) = ?", cmd.Code)
	}

	if cmd.DeliveryDeadline != nil {
		builder = builder.Set("delivery_deadline", *cmd.DeliveryDeadline)
	}

	if tr.To == entities.OrderCompleted {
		builder = builder.
			Set("completed_at", cmd.At).
			Set("payment_status", entities.PaymentPaid.String())
	}

	query, args, err := builder.
		Suffix("RETURNING id, (SELECT prev.status FROM orders prev WHERE prev.id = orders.id)").
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	var (
		id       uuid.UUID
		previous string
	)
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id, &previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", order.ErrNotApplied
		}
		return nil, "", fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	o, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return o, entities.OrderStatus(previous), nil
}

// UpdateDriverLocation перезаписывает текущую позицию водителя, стартовая
// позиция выставляется только один раз.
func (r *Repository) UpdateDriverLocation(ctx context.Context, upd entities.LocationUpdate) (*entities.Order, error) {
	terminal := make([]string, 0, len(entities.TerminalStatuses))
	for _, s := range entities.TerminalStatuses {
		terminal = append(terminal, s.String())
	}

	query := `UPDATE orders SET
			driver_lat = $1,
			driver_lng = $2,
			driver_location_at = $3,
			driver_start_lat = COALESCE(driver_start_lat, $1),
			driver_start_lng = COALESCE(driver_start_lng, $2),
			driver_start_at = COALESCE(driver_start_at, $3),
			updated_at = $3
		WHERE id = $4 AND driver_id = $5 AND status <> ALL($6)
		RETURNING id`

	var id uuid.UUID
	err := r.querier.QueryRow(
		ctx,
		query,
		upd.Point.Latitude,
		upd.Point.Longitude,
		upd.At,
		upd.OrderID,
		upd.DriverID,
		terminal,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotApplied
		}
		return nil, fmt.Errorf("unexpected order repository update location error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) ListAvailable(ctx context.Context, limit uint64) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders o").
		Join("merchants m ON m.id = o.merchant_id").
		Where(sq.Eq{"o.status": entities.OrderReadyToDeliver.String()}).
		OrderBy("o.created_at").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list available error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list available error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list available error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list available error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// MarkRefunded переводит оплату заказа в REFUNDED, если она была PAID.
// Возвращает false, если заказ уже возвращен или не оплачивался.
func (r *Repository) MarkRefunded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE orders SET payment_status = $1, updated_at = $2
		WHERE id = $3 AND payment_status = $4`

	tag, err := r.querier.Exec(ctx, query,
		entities.PaymentRefunded.String(),
		at,
		id,
		entities.PaymentPaid.String(),
	)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository mark refunded error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountStaleTracking считает заказы в пути, по которым позиция не обновлялась с staleBefore.
func (r *Repository) CountStaleTracking(ctx context.Context, staleBefore time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders
		WHERE status = $1 AND (driver_location_at IS NULL OR driver_location_at < $2)`

	var count int64
	err := r.querier.QueryRow(ctx, query, entities.OrderOnTheWay.String(), staleBefore).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count stale error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountDriverDeliveries(ctx context.Context, driverID uuid.UUID) (*entities.DriverStats, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status IN ($3, $4)),
			COUNT(*) FILTER (WHERE status = $2 AND completed_at <= delivery_deadline)
		FROM orders
		WHERE driver_id = $1`

	var model DriverDeliveriesDB
	err := r.querier.QueryRow(ctx, query,
		driverID,
		entities.OrderCompleted.String(),
		entities.OrderAcceptedByDriver.String(),
		entities.OrderOnTheWay.String(),
	).Scan(&model.Completed, &model.Active, &model.OnTime)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository driver deliveries error: %w", err)
	}

	return &entities.DriverStats{
		DriverID:            driverID,
		CompletedDeliveries: model.Completed,
		ActiveDeliveries:    model.Active,
		OnTimeDeliveries:    model.OnTime,
	}, nil
}

func (r *Repository) getItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDB, error) {
	query := `SELECT order_id, product_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY name`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(&item.OrderID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return items, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var m OrderDB
	err := row.Scan(
		&m.ID,
		&m.CustomerID,
		&m.MerchantID,
		&m.MerchantOwnerID,
		&m.DriverID,
		&m.ZoneID,
		&m.Status,
		&m.PickupCode,
		&m.DeliveryCode,
		&m.Subtotal,
		&m.DeliveryFee,
		&m.Discount,
		&m.Total,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.DeliveryLatitude,
		&m.DeliveryLongitude,
		&m.DeliveryAddress,
		&m.DriverLat,
		&m.DriverLng,
		&m.DriverLocationAt,
		&m.DriverStartLat,
		&m.DriverStartLng,
		&m.DriverStartAt,
		&m.DeliveryDeadline,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
