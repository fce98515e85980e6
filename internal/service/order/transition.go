package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Transition переводит заказ по действию action от имени principal.
// Проверки идут в порядке: аутентификация, роль, существование заказа,
// допустимость статуса, код. Запись выполняется одним условным UPDATE,
// вместе с событием в outbox и выплатой водителю в той же транзакции.
func (s *Order) Transition(
	ctx context.Context,
	principal *entities.Principal,
	orderID uuid.UUID,
	action entities.Action,
	code string,
) (*entities.TransitionResult, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	tr, ok := entities.TransitionFor(action)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if principal.Role != tr.Actor {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	cmd := entities.TransitionCommand{
		OrderID:    orderID,
		Transition: tr,
		ActorID:    principal.UserID,
		At:         now,
	}

	if tr.Actor == entities.RoleDriver {
		driver, err := s.approvedDriver(ctx, principal)
		if err != nil {
			return nil, err
		}

		if tr.Action == entities.ActionDriverAccept {
			deadline := s.timeFactory.CalculateDeadline(driver.VehicleType, now)
			cmd.DeliveryDeadline = &deadline
		}
	}

	if tr.Code != entities.CodeNone {
		cmd.Code = strings.ToUpper(strings.TrimSpace(code))
		if cmd.Code == "" {
			return nil, ErrMissingCode
		}
	}

	result := &entities.TransitionResult{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, previous, err := s.repository.Transition(ctx, cmd)
		if err != nil {
			if errors.Is(err, ErrNotApplied) {
				return s.classifyRejected(ctx, cmd)
			}
			return fmt.Errorf("transition order: %w", err)
		}

		_, err = s.outbox.Enqueue(ctx, entities.OrderEvent{
			OrderID:        updated.ID,
			Status:         updated.Status,
			PreviousStatus: previous,
			ActorID:        principal.UserID,
			ActorRole:      principal.Role,
			OccurredAt:     now,
		})
		if err != nil {
			return fmt.Errorf("enqueue order event: %w", err)
		}

		if updated.Status == entities.OrderCompleted {
			earnings, err := s.wallet.Payout(ctx, principal.UserID, updated.ID, updated.Prices.DeliveryFee)
			if err != nil {
				return fmt.Errorf("payout driver: %w", err)
			}
			result.Earnings = &earnings
		}

		result.Order = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// classifyRejected определяет, почему условный UPDATE не применился.
// Читает заказ в той же транзакции.
func (s *Order) classifyRejected(ctx context.Context, cmd entities.TransitionCommand) error {
	o, err := s.repository.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	tr := cmd.Transition

	if o.Status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, o.Status)
	}

	switch tr.Actor {
	case entities.RoleMerchant:
		if o.MerchantOwnerID != cmd.ActorID {
			return ErrForbidden
		}
	case entities.RoleDriver:
		if !tr.AssignsDriver && (o.DriverID == nil || *o.DriverID != cmd.ActorID) {
			return ErrForbidden
		}
	}

	if !tr.Allows(o.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidState, o.Status, tr.To)
	}

	if tr.Code != entities.CodeNone {
		return ErrInvalidCode
	}

	// строка изменилась между UPDATE и чтением
	return fmt.Errorf("%w: concurrent update", ErrInvalidState)
}
