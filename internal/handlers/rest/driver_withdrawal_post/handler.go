package driver_withdrawal_post

import (
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/handlers/rest/request"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/internal/pkg/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var withdrawalDTO dto.WithdrawalRequest
	if err := request.DecodeJSON(r, &withdrawalDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	transaction, err := h.service.Withdraw(r.Context(), auth.FromContext(r.Context()), withdrawalDTO.Amount)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Transaction(transaction))
}
