package ping_get

import (
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
