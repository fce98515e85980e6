package wallet

import (
	"errors"
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrUnauthenticated = fmt.Errorf("authentication required: %w", apperr.Unauthorized)
	ErrForbidden       = fmt.Errorf("action is not allowed for caller: %w", apperr.Forbidden)

	ErrWalletNotFound      = fmt.Errorf("wallet not found: %w", apperr.NotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction not found: %w", apperr.NotFound)

	ErrInvalidAmount            = fmt.Errorf("amount must be positive with at most 2 decimals: %w", apperr.InvalidInput)
	ErrInvalidTransactionStatus = fmt.Errorf("status must be COMPLETED or FAILED: %w", apperr.InvalidInput)
	ErrNotWithdrawal            = fmt.Errorf("transaction is not a withdrawal: %w", apperr.InvalidInput)
	ErrInsufficientBalance      = fmt.Errorf("insufficient wallet balance: %w", apperr.InsufficientBalance)
	ErrTransactionNotPending    = fmt.Errorf("transaction is not pending: %w", apperr.InvalidState)

	// Для заказа уже есть транзакция такого вида.
	ErrDuplicateTransaction = fmt.Errorf("transaction already exists: %w", apperr.Conflict)

	ErrNotApplied = errors.New("conditional update matched no rows")
)
