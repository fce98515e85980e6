package drivers_get

import (
	"net/http"
	"strings"

	"marketplace/internal/entities"
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
	var status *entities.DriverStatus
	if raw := request.QueryString(r, "status"); raw != nil {
		s := entities.DriverStatus(strings.ToUpper(*raw))
		status = &s
	}

	drivers, err := h.service.GetDrivers(r.Context(), auth.FromContext(r.Context()), status)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Drivers(drivers))
}
