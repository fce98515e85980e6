package apperr

import (
	"context"
	"errors"
)

// Корневые ошибки. Сервисы оборачивают их своими сентинелами,
// обработчики по ним выбирают HTTP код.
var (
	Unauthorized        = errors.New("unauthorized")
	Forbidden           = errors.New("forbidden")
	NotFound            = errors.New("not found")
	InvalidInput        = errors.New("invalid input")
	InvalidState        = errors.New("invalid state")
	InvalidCode         = errors.New("invalid code")
	InsufficientBalance = errors.New("insufficient balance")
	Conflict            = errors.New("conflict")
)

const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidState        = "INVALID_STATE"
	CodeInvalidCode         = "INVALID_CODE"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeConflict            = "CONFLICT"
	CodeInternal            = "INTERNAL"
	CodeTimeout             = "TIMEOUT"
	CodeUnavailable         = "UNAVAILABLE"
)

var codes = []struct {
	err  error
	code string
}{
	{Unauthorized, CodeUnauthorized},
	{Forbidden, CodeForbidden},
	{NotFound, CodeNotFound},
	{InvalidInput, CodeInvalidInput},
	{InvalidState, CodeInvalidState},
	{InvalidCode, CodeInvalidCode},
	{InsufficientBalance, CodeInsufficientBalance},
	{Conflict, CodeConflict},
	{context.DeadlineExceeded, CodeTimeout},
}

// Code возвращает код таксономии, для неизвестных ошибок INTERNAL.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
