package zone_put

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

	var zoneDTO dto.ZoneUpdate
	if err := request.DecodeJSON(r, &zoneDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	zoneModify := entities.ZoneModify{
		ID:          &id,
		Name:        zoneDTO.Name,
		Priority:    zoneDTO.Priority,
		DeliveryFee: zoneDTO.DeliveryFee,
	}

	// Опциональные параметры
	if zoneDTO.Polygon != nil {
		polygon, err := presenter.Points(*zoneDTO.Polygon)
		if err != nil {
			respond.BadRequest(w, h.log, err.Error())
			return
		}
		zoneModify.Polygon = polygon
	}
	if zoneDTO.Status != nil {
		status := entities.ZoneStatus(strings.ToUpper(*zoneDTO.Status))
		zoneModify.Status = &status
	}
	if zoneDTO.Neighborhoods != nil {
		zoneModify.Neighborhoods = *zoneDTO.Neighborhoods
	}

	zone, err := h.service.UpdateZone(r.Context(), auth.FromContext(r.Context()), zoneModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Zone(zone))
}
