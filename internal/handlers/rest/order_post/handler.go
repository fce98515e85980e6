package order_post

import (
	"net/http"

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
	var checkoutDTO dto.CheckoutRequest
	if err := request.DecodeJSON(r, &checkoutDTO); err != nil {
		respond.BadRequest(w, h.log, err.Error())
		return
	}

	deliveryPoint, err := presenter.Point(checkoutDTO.DeliveryLocation)
	if err != nil {
		respond.BadRequest(w, h.log, "delivery_location: "+err.Error())
		return
	}

	principal := auth.FromContext(r.Context())

	checkout := entities.Checkout{
		MerchantID:       checkoutDTO.MerchantId,
		Items:            make([]entities.CheckoutItem, 0, len(checkoutDTO.Items)),
		DeliveryLocation: deliveryPoint,
		DeliveryAddress:  checkoutDTO.DeliveryAddress,
		PaymentMethod:    entities.PaymentMethod(checkoutDTO.PaymentMethod),
	}
	for _, item := range checkoutDTO.Items {
		checkout.Items = append(checkout.Items, entities.CheckoutItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.service.Checkout(r.Context(), principal, checkout)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, presenter.Order(order, principal))
}
