package order_location_post

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
	id, err := request.PathID(r, "id")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	var locationDTO dto.Location
	if err := request.DecodeJSON(r, &locationDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	point, err := presenter.Point(locationDTO)
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	order, err := h.service.UpdateLocation(r.Context(), auth.FromContext(r.Context()), id, point)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.LocationSnapshot(order))
}
