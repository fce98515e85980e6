//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_reconcile_test
package wallet_reconcile

import "context"

type Service interface {
	CountDrifted(ctx context.Context) (int, error)
}
