package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

// Withdraw резервирует сумму на вывод: баланс уменьшается сразу,
// транзакция остается PENDING до подтверждения администратором.
func (s *Wallet) Withdraw(ctx context.Context, principal *entities.Principal, amount decimal.Decimal) (*entities.Transaction, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != entities.RoleDriver {
		return nil, ErrForbidden
	}
	if !isValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var result *entities.Transaction
	now := time.Now().UTC()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repository.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}

		if _, err := s.repository.Debit(ctx, wallet.ID, amount, now); err != nil {
			if notApplied(err) {
				return ErrInsufficientBalance
			}
			return fmt.Errorf("debit wallet: %w", err)
		}

		t := s.newTransaction(
			wallet.ID, nil,
			entities.KindWithdrawal, entities.TransactionDebit, entities.TransactionPending,
			amount, now,
		)
		if err := s.repository.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("create withdrawal transaction: %w", err)
		}

		result = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ConfirmWithdrawal завершает вывод. FAILED возвращает сумму на баланс.
func (s *Wallet) ConfirmWithdrawal(
	ctx context.Context,
	principal *entities.Principal,
	transactionID uuid.UUID,
	status entities.TransactionStatus,
) (*entities.Transaction, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}
	if status != entities.TransactionCompleted && status != entities.TransactionFailed {
		return nil, ErrInvalidTransactionStatus
	}

	var result *entities.Transaction
	now := time.Now().UTC()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		t, err := s.repository.GetTransaction(ctx, transactionID)
		if err != nil {
			return fmt.Errorf("get transaction: %w", err)
		}
		if t.Kind != entities.KindWithdrawal {
			return ErrNotWithdrawal
		}

		finalized, err := s.repository.FinalizePending(ctx, transactionID, status, now)
		if err != nil {
			if notApplied(err) {
				return ErrTransactionNotPending
			}
			return fmt.Errorf("finalize transaction: %w", err)
		}

		if status == entities.TransactionFailed {
			wallet, err := s.repository.GetByID(ctx, t.WalletID)
			if err != nil {
				return fmt.Errorf("get wallet: %w", err)
			}

			_, err = s.repository.Credit(ctx, wallet.ID, wallet.UserID, wallet.OwnerRole, t.Amount, now)
			if err != nil {
				return fmt.Errorf("restore balance: %w", err)
			}
		}

		result = finalized
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
