package driver_post

import (
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/request"
	"marketplace/internal/handlers/rest/respond"
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

// ServeHTTP регистрирует водителя. Маршрут публичный, статус всегда PENDING
// до одобрения администратором.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverDTO dto.DriverCreate
	if err := request.DecodeJSON(r, &driverDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	driverModify := entities.DriverModify{
		Name:  &driverDTO.Name,
		Phone: &driverDTO.Phone,
	}
	if driverDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*driverDTO.VehicleType)
		driverModify.VehicleType = &vehicleType
	}

	driver, err := h.service.Register(r.Context(), driverModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.DriverCreateResponse{Id: driver.ID})
}
