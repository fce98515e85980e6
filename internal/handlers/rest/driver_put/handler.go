package driver_put

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

	var driverDTO dto.DriverUpdate
	if err := request.DecodeJSON(r, &driverDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	driverModify := entities.DriverModify{
		ID:    &id,
		Name:  driverDTO.Name,
		Phone: driverDTO.Phone,
	}

	// Опциональные параметры
	if driverDTO.Status != nil {
		status := entities.DriverStatus(strings.ToUpper(*driverDTO.Status))
		driverModify.Status = &status
	}
	if driverDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*driverDTO.VehicleType)
		driverModify.VehicleType = &vehicleType
	}

	driver, err := h.service.UpdateDriver(r.Context(), auth.FromContext(r.Context()), driverModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Driver(driver))
}
