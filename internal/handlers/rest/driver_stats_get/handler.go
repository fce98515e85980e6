package driver_stats_get

import (
	"net/http"

	"github.com/google/uuid"
	"marketplace/internal/handlers/rest/presenter"
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
	principal := auth.FromContext(r.Context())

	driverID := uuid.Nil
	if principal != nil {
		driverID = principal.UserID
	}

	stats, err := h.service.GetStats(r.Context(), principal, driverID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.DriverStats(stats))
}
