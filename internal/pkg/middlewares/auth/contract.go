//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Authenticator interface {
	ParseHeader(header string) (*entities.Principal, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
