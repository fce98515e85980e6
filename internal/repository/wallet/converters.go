package wallet

import "marketplace/internal/entities"

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}

	return &entities.Wallet{
		ID:        w.ID,
		UserID:    w.UserID,
		OwnerRole: entities.Role(w.OwnerRole),
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func TransactionToDomain(t *TransactionDB) *entities.Transaction {
	if t == nil {
		return nil
	}

	return &entities.Transaction{
		ID:        t.ID,
		WalletID:  t.WalletID,
		OrderID:   t.OrderID,
		Type:      entities.TransactionType(t.Type),
		Status:    entities.TransactionStatus(t.Status),
		Kind:      entities.TransactionKind(t.Kind),
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func TransactionsToDomain(models []TransactionDB) []entities.Transaction {
	if len(models) == 0 {
		return []entities.Transaction{}
	}

	result := make([]entities.Transaction, len(models))
	for i := range models {
		result[i] = *TransactionToDomain(&models[i])
	}
	return result
}

func ReconciliationToDomain(r *ReconciliationDB) entities.WalletReconciliation {
	return entities.WalletReconciliation{
		WalletID: r.WalletID,
		Balance:  r.Balance,
		Expected: r.Expected,
	}
}
