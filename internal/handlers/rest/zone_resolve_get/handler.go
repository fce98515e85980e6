package zone_resolve_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/handlers/rest/request"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/pkg/geo"
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
	lat, err := request.QueryFloat(r, "lat")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}
	lng, err := request.QueryFloat(r, "lng")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	zone, err := h.service.Resolve(r.Context(), geo.Point{Latitude: lat, Longitude: lng})
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Zone(zone))
}
