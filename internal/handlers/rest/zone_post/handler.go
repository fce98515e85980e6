package zone_post

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
	var zoneDTO dto.ZoneCreate
	if err := request.DecodeJSON(r, &zoneDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	polygon, err := presenter.Points(zoneDTO.Polygon)
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	zoneModify := entities.ZoneModify{
		Name:        &zoneDTO.Name,
		Polygon:     polygon,
		Priority:    zoneDTO.Priority,
		DeliveryFee: &zoneDTO.DeliveryFee,
	}
	if zoneDTO.Status != nil {
		status := entities.ZoneStatus(strings.ToUpper(*zoneDTO.Status))
		zoneModify.Status = &status
	}
	if zoneDTO.Neighborhoods != nil {
		zoneModify.Neighborhoods = *zoneDTO.Neighborhoods
	}

	zone, err := h.service.CreateZone(r.Context(), auth.FromContext(r.Context()), zoneModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, presenter.Zone(zone))
}
