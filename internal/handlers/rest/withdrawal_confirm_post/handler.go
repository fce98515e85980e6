package withdrawal_confirm_post

import (
	"net/http"
	"strings"

	"marketplace/internal/entities"
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
	id, err := request.PathID(r, "id")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	var confirmDTO dto.WithdrawalConfirmRequest
	if err := request.DecodeJSON(r, &confirmDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	status := entities.TransactionStatus(strings.ToUpper(confirmDTO.Status))

	transaction, err := h.service.ConfirmWithdrawal(r.Context(), auth.FromContext(r.Context()), id, status)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Transaction(transaction))
}
