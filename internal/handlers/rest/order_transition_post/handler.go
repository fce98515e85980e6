package order_transition_post

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/handlers/rest/request"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/order"
)

// Handler обслуживает переходы одной роли: /merchant/orders/{id}/{action}
// или /driver/orders/{id}/{action}.
type Handler struct {
	log     handlerLogger
	service Service
	role    entities.Role
}

func New(log handlerLogger, service Service, role entities.Role) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// без токена 401 раньше любой проверки пути и тела
	principal := auth.FromContext(r.Context())
	if principal == nil {
		respond.Error(w, h.log, order.ErrUnauthenticated)
		return
	}

	id, err := request.PathID(r, "id")
	if err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	name := mux.Vars(r)["action"]
	action, ok := entities.ActionFromPath(h.role, name)
	if !ok {
		respond.Error(w, h.log, fmt.Errorf("%w: %s", order.ErrUnknownAction, name))
		return
	}

	// тело необязательно, код нужен только водителю
	var transitionDTO dto.TransitionRequest
	if r.ContentLength != 0 {
		if err := request.DecodeJSON(r, &transitionDTO); err != nil {
			respond.BadRequest(w, h.log, err.Error())
			return
		}
	}

	var code string
	if transitionDTO.Code != nil {
		code = *transitionDTO.Code
	}

	result, err := h.service.Transition(r.Context(), principal, id, action, code)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Transition(result, principal))
}
