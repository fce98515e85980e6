package order_get

import (
	"net/http"

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

	principal := auth.FromContext(r.Context())

	order, err := h.service.GetOrder(r.Context(), principal, id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Order(order, principal))
}
