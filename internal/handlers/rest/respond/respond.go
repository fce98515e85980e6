// Package respond пишет ответы в общем конверте {"success", "data"} / {"success", "error", "code"}.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/apperr"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

const internalErrorMessage = "internal server error"

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

var statusByCode = map[string]int{
	apperr.CodeUnauthorized:        http.StatusUnauthorized,
	apperr.CodeForbidden:           http.StatusForbidden,
	apperr.CodeNotFound:            http.StatusNotFound,
	apperr.CodeInvalidInput:        http.StatusBadRequest,
	apperr.CodeInvalidState:        http.StatusBadRequest,
	apperr.CodeInvalidCode:         http.StatusBadRequest,
	apperr.CodeInsufficientBalance: http.StatusBadRequest,
	apperr.CodeConflict:            http.StatusConflict,
	apperr.CodeTimeout:             http.StatusGatewayTimeout,
	apperr.CodeUnavailable:         http.StatusServiceUnavailable,
}

// StatusCode - HTTP код для ошибки сервиса.
func StatusCode(err error) int {
	status, ok := statusByCode[apperr.Code(err)]
	if !ok {
		return http.StatusInternalServerError
	}
	return status
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, data any) {
	write(w, log, status, dto.SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// Error отвечает по таксономии ошибки. Неизвестные ошибки логируются
// и отдаются клиенту как 500 без подробностей.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	code := apperr.Code(err)
	status := StatusCode(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		// отмена клиентом не ошибка сервиса
		if !errors.Is(err, context.Canceled) {
			log.With(
				logger.NewField("error", err),
			).Error("request failed")
		}
		message = internalErrorMessage
	}

	write(w, log, status, dto.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// Unavailable - сервис останавливается и новые запросы не принимает.
func Unavailable(w http.ResponseWriter, log handlerLogger, message string) {
	w.Header().Set("Connection", "close")
	w.Header().Set("Retry-After", "5")
	write(w, log, http.StatusServiceUnavailable, dto.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    apperr.CodeUnavailable,
	})
}

// BadRequest - тело или параметры запроса не разобрались.
func BadRequest(w http.ResponseWriter, log handlerLogger, message string) {
	write(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    apperr.CodeInvalidInput,
	})
}

func write(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
