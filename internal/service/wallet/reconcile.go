package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Reconcile сверяет баланс кошелька с журналом транзакций.
func (s *Wallet) Reconcile(ctx context.Context, principal *entities.Principal, walletID uuid.UUID) (*entities.WalletReconciliation, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != entities.RoleAdmin {
		return nil, ErrForbidden
	}

	report, err := s.repository.Reconcile(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("reconcile wallet: %w", err)
	}

	return report, nil
}

// CountDrifted - число кошельков, баланс которых расходится с журналом.
func (s *Wallet) CountDrifted(ctx context.Context) (int, error) {
	drifted, err := s.repository.ListInconsistent(ctx)
	if err != nil {
		return 0, fmt.Errorf("list inconsistent wallets: %w", err)
	}

	return len(drifted), nil
}
