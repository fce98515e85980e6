package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/apperr"
	"marketplace/internal/entities"
)

// Payout начисляет водителю его долю стоимости доставки.
// Пополнение кошелька и транзакция PAYOUT пишутся в одной транзакции БД,
// при вызове из перехода статуса она общая с переходом.
func (s *Wallet) Payout(ctx context.Context, driverID, orderID uuid.UUID, deliveryFee decimal.Decimal) (decimal.Decimal, error) {
	earnings := entities.DriverEarnings(deliveryFee)
	if !earnings.IsPositive() {
		return decimal.Zero, nil
	}

	now := time.Now().UTC()
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repository.Credit(ctx, uuid.New(), driverID, entities.RoleDriver, earnings, now)
		if err != nil {
			return fmt.Errorf("credit driver wallet: %w", err)
		}

		t := s.newTransaction(
			wallet.ID, &orderID,
			entities.KindPayout, entities.TransactionCredit, entities.TransactionCompleted,
			earnings, now,
		)
		if err := s.repository.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("create payout transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return earnings, nil
}

// ChargeOrder списывает оплату заказа с кошелька покупателя.
func (s *Wallet) ChargeOrder(ctx context.Context, customerID, orderID uuid.UUID, amount decimal.Decimal) error {
	if !isValidAmount(amount) {
		return ErrInvalidAmount
	}

	now := time.Now().UTC()
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repository.GetByUserID(ctx, customerID)
		if err != nil {
			if errors.Is(err, apperr.NotFound) {
				return ErrInsufficientBalance
			}
			return fmt.Errorf("get customer wallet: %w", err)
		}

		if _, err := s.repository.Debit(ctx, wallet.ID, amount, now); err != nil {
			if notApplied(err) {
				return ErrInsufficientBalance
			}
			return fmt.Errorf("debit customer wallet: %w", err)
		}

		t := s.newTransaction(
			wallet.ID, &orderID,
			entities.KindOrderPayment, entities.TransactionDebit, entities.TransactionCompleted,
			amount, now,
		)
		if err := s.repository.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("create payment transaction: %w", err)
		}
		return nil
	})
}

// RefundOrder возвращает оплату кошельком по отмененному заказу.
// Повторный вызов ничего не делает и возвращает false.
func (s *Wallet) RefundOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	refunded := false
	now := time.Now().UTC()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		payment, err := s.repository.GetOrderTransaction(ctx, orderID, entities.KindOrderPayment)
		if err != nil {
			if errors.Is(err, apperr.NotFound) {
				// оплата наличными
				return nil
			}
			return fmt.Errorf("get order payment: %w", err)
		}

		marked, err := s.orders.MarkRefunded(ctx, orderID, now)
		if err != nil {
			return fmt.Errorf("mark order refunded: %w", err)
		}
		if !marked {
			return nil
		}

		wallet, err := s.repository.GetByID(ctx, payment.WalletID)
		if err != nil {
			return fmt.Errorf("get customer wallet: %w", err)
		}

		if _, err := s.repository.Credit(ctx, wallet.ID, wallet.UserID, wallet.OwnerRole, payment.Amount, now); err != nil {
			return fmt.Errorf("credit customer wallet: %w", err)
		}

		t := s.newTransaction(
			wallet.ID, &orderID,
			entities.KindRefund, entities.TransactionCredit, entities.TransactionCompleted,
			payment.Amount, now,
		)
		if err := s.repository.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("create refund transaction: %w", err)
		}

		refunded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return refunded, nil
}

// HasPayout проверяет, что по завершенному заказу есть выплата водителю.
func (s *Wallet) HasPayout(ctx context.Context, orderID uuid.UUID) (bool, error) {
	_, err := s.repository.GetOrderTransaction(ctx, orderID, entities.KindPayout)
	if err != nil {
		if errors.Is(err, apperr.NotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get payout: %w", err)
	}
	return true, nil
}
