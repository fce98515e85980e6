package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/wallet"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	walletColumns      = `id, user_id, owner_role, balance, created_at, updated_at`
	transactionColumns = `id, wallet_id, order_id, type, status, kind, amount, created_at, updated_at`

	// completed credits - completed debits - pending debits
	expectedBalanceExpr = `COALESCE(SUM(CASE
			WHEN t.type = 'CREDIT' AND t.status = 'COMPLETED' THEN t.amount
			WHEN t.type = 'DEBIT' AND t.status IN ('COMPLETED', 'PENDING') THEN -t.amount
			ELSE 0
		END), 0)`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Credit зачисляет amount на кошелек пользователя, создавая кошелек при первом начислении.
func (r *Repository) Credit(
	ctx context.Context,
	newWalletID uuid.UUID,
	userID uuid.UUID,
	role entities.Role,
	amount decimal.Decimal,
	at time.Time,
) (*entities.Wallet, error) {
	query := `INSERT INTO wallets (id, user_id, owner_role, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id) DO UPDATE
			SET balance = wallets.balance + EXCLUDED.balance,
				updated_at = EXCLUDED.updated_at
		RETURNING ` + walletColumns

	walletModel, err := scanWallet(r.querier.QueryRow(ctx, query, newWalletID, userID, role.String(), amount, at))
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository credit error: %w", err)
	}

	return ToDomain(walletModel), nil
}

// Debit списывает amount только при достаточном балансе, иначе wallet.ErrNotApplied.
func (r *Repository) Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, at time.Time) (*entities.Wallet, error) {
	query := `UPDATE wallets SET balance = balance - $1, updated_at = $2
		WHERE id = $3 AND balance >= $1
		RETURNING ` + walletColumns

	walletModel, err := scanWallet(r.querier.QueryRow(ctx, query, amount, at, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrNotApplied
		}
		return nil, fmt.Errorf("unexpected wallet repository debit error: %w", err)
	}

	return ToDomain(walletModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return r.getOne(ctx, "user_id", userID)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	return r.getOne(ctx, "id", id)
}

func (r *Repository) getOne(ctx context.Context, column string, value uuid.UUID) (*entities.Wallet, error) {
	query, args, err := qb.
		Select(walletColumns).
		From("wallets").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}

	walletModel, err := scanWallet(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}

	return ToDomain(walletModel), nil
}

func (r *Repository) CreateTransaction(ctx context.Context, t *entities.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := r.querier.Exec(ctx, query,
		t.ID,
		t.WalletID,
		t.OrderID,
		string(t.Type),
		t.Status.String(),
		string(t.Kind),
		t.Amount,
		t.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return wallet.ErrDuplicateTransaction
		}
		return fmt.Errorf("unexpected wallet repository create transaction error: %w", err)
	}

	return nil
}

func (r *Repository) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	model, err := scanTransaction(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get transaction error: %w", err)
	}

	return TransactionToDomain(model), nil
}

func (r *Repository) GetOrderTransaction(ctx context.Context, orderID uuid.UUID, kind entities.TransactionKind) (*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_id = $1 AND kind = $2`

	model, err := scanTransaction(r.querier.QueryRow(ctx, query, orderID, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get order transaction error: %w", err)
	}

	return TransactionToDomain(model), nil
}

// FinalizePending меняет статус только у PENDING транзакции, иначе wallet.ErrNotApplied.
func (r *Repository) FinalizePending(
	ctx context.Context,
	id uuid.UUID,
	status entities.TransactionStatus,
	at time.Time,
) (*entities.Transaction, error) {
	query := `UPDATE transactions SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + transactionColumns

	model, err := scanTransaction(r.querier.QueryRow(ctx, query,
		status.String(),
		at,
		id,
		entities.TransactionPending.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrNotApplied
		}
		return nil, fmt.Errorf("unexpected wallet repository finalize error: %w", err)
	}

	return TransactionToDomain(model), nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID uuid.UUID, limit uint64) ([]entities.Transaction, error) {
	query, args, err := qb.
		Select(transactionColumns).
		From("transactions").
		Where(sq.Eq{"wallet_id": walletID}).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}
	defer rows.Close()

	models := make([]TransactionDB, 0, limit)
	for rows.Next() {
		model, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
		}
		models = append(models, *model)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}

	return TransactionsToDomain(models), nil
}

// SumCompleted - сумма завершенных транзакций вида kind по кошельку пользователя.
func (r *Repository) SumCompleted(ctx context.Context, userID uuid.UUID, kind entities.TransactionKind) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN wallets w ON w.id = t.wallet_id
		WHERE w.user_id = $1 AND t.kind = $2 AND t.status = $3`

	var sum decimal.Decimal
	err := r.querier.QueryRow(ctx, query, userID, string(kind), entities.TransactionCompleted.String()).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unexpected wallet repository sum error: %w", err)
	}

	return sum, nil
}

func (r *Repository) Reconcile(ctx context.Context, walletID uuid.UUID) (*entities.WalletReconciliation, error) {
	query := `SELECT w.id, w.balance, ` + expectedBalanceExpr + `
		FROM wallets w
		LEFT JOIN transactions t ON t.wallet_id = w.id
		WHERE w.id = $1
		GROUP BY w.id, w.balance`

	var model ReconciliationDB
	err := r.querier.QueryRow(ctx, query, walletID).Scan(&model.WalletID, &model.Balance, &model.Expected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository reconcile error: %w", err)
	}

	res := ReconciliationToDomain(&model)
	return &res, nil
}

// ListInconsistent возвращает кошельки, баланс которых расходится с журналом.
func (r *Repository) ListInconsistent(ctx context.Context) ([]entities.WalletReconciliation, error) {
	query := `SELECT w.id, w.balance, ` + expectedBalanceExpr + ` AS expected
		FROM wallets w
		LEFT JOIN transactions t ON t.wallet_id = w.id
		GROUP BY w.id, w.balance
		HAVING w.balance <> ` + expectedBalanceExpr

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list inconsistent error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.WalletReconciliation, 0)
	for rows.Next() {
		var model ReconciliationDB
		err := rows.Scan(&model.WalletID, &model.Balance, &model.Expected)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository list inconsistent error: %w", err)
		}
		result = append(result, ReconciliationToDomain(&model))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list inconsistent error: %w", err)
	}

	return result, nil
}

func scanWallet(row pgx.Row) (*WalletDB, error) {
	var m WalletDB
	err := row.Scan(&m.ID, &m.UserID, &m.OwnerRole, &m.Balance, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanTransaction(row pgx.Row) (*TransactionDB, error) {
	var m TransactionDB
	err := row.Scan(&m.ID, &m.WalletID, &m.OrderID, &m.Type, &m.Status, &m.Kind, &m.Amount, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
