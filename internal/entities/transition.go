package entities

import (
	"time"

	"github.com/google/uuid"
	"marketplace/pkg/geo"
)

type Action string

const (
	ActionMerchantAccept Action = "merchant_accept"
	ActionMerchantReject Action = "merchant_reject"
	ActionPrepare        Action = "prepare"
	ActionReady          Action = "ready"
	ActionMerchantCancel Action = "merchant_cancel"
	ActionDriverAccept   Action = "driver_accept"
	ActionDriverReject   Action = "driver_reject"
	ActionStartDelivery  Action = "start_delivery"
	ActionDriverCancel   Action = "driver_cancel"
	ActionComplete       Action = "complete"
)

func (a Action) String() string {
	return string(a)
}

type CodeKind int

const (
	CodeNone CodeKind = iota
	CodePickup
	CodeDelivery
)

// Transition описывает переход: кто может его выполнить, из каких статусов и в какой.
type Transition struct {
	Action Action
	Actor  Role
	From   []OrderStatus
	To     OrderStatus
	Code   CodeKind

	// Водитель назначается на заказ этим переходом, проверки владения нет.
	AssignsDriver bool
}

func (t Transition) Allows(status OrderStatus) bool {
	for _, s := range t.From {
		if s == status {
			return true
		}
	}
	return false
}

var transitions = map[Action]Transition{
	ActionMerchantAccept: {
		Action: ActionMerchantAccept,
		Actor:  RoleMerchant,
		From:   []OrderStatus{OrderPending},
		To:     OrderAcceptedByMerchant,
	},
	ActionMerchantReject: {
		Action: ActionMerchantReject,
		Actor:  RoleMerchant,
		From:   []OrderStatus{OrderPending},
		To:     OrderRejectedByMerchant,
	},
	ActionPrepare: {
		Action: ActionPrepare,
		Actor:  RoleMerchant,
		From:   []OrderStatus{OrderAcceptedByMerchant},
		To:     OrderInPreparation,
	},
	ActionReady: {
		Action: ActionReady,
		Actor:  RoleMerchant,
		From:   []OrderStatus{OrderInPreparation},
		To:     OrderReadyToDeliver,
	},
	ActionMerchantCancel: {
		Action: ActionMerchantCancel,
		Actor:  RoleMerchant,
		From:   []OrderStatus{OrderAcceptedByMerchant, OrderInPreparation, OrderReadyToDeliver},
		To:     OrderCanceledByMerchant,
	},
	ActionDriverAccept: {
		Action:        ActionDriverAccept,
		Actor:         RoleDriver,
		From:          []OrderStatus{OrderReadyToDeliver},
		To:            OrderAcceptedByDriver,
		Code:          CodePickup,
		AssignsDriver: true,
	},
	ActionDriverReject: {
		Action:        ActionDriverReject,
		Actor:         RoleDriver,
		From:          []OrderStatus{OrderReadyToDeliver},
		To:            OrderRejectedByDriver,
		AssignsDriver: true,
	},
	ActionStartDelivery: {
		Action: ActionStartDelivery,
		Actor:  RoleDriver,
		From:   []OrderStatus{OrderAcceptedByDriver},
		To:     OrderOnTheWay,
	},
	ActionDriverCancel: {
		Action: ActionDriverCancel,
		Actor:  RoleDriver,
		From:   []OrderStatus{OrderAcceptedByDriver, OrderOnTheWay},
		To:     OrderCanceledByDriver,
	},
	ActionComplete: {
		Action: ActionComplete,
		Actor:  RoleDriver,
		From:   []OrderStatus{OrderAcceptedByDriver, OrderOnTheWay},
		To:     OrderCompleted,
		Code:   CodeDelivery,
	},
}

func TransitionFor(action Action) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// Короткие имена действий в URL, свои для каждой роли.
var pathActions = map[Role]map[string]Action{
	RoleMerchant: {
		"accept":  ActionMerchantAccept,
		"reject":  ActionMerchantReject,
		"prepare": ActionPrepare,
		"ready":   ActionReady,
		"cancel":  ActionMerchantCancel,
	},
	RoleDriver: {
		"accept":   ActionDriverAccept,
		"reject":   ActionDriverReject,
		"start":    ActionStartDelivery,
		"complete": ActionComplete,
		"cancel":   ActionDriverCancel,
	},
}

func ActionFromPath(role Role, name string) (Action, bool) {
	action, ok := pathActions[role][name]
	return action, ok
}

// TransitionCommand - параметры одного условного перехода.
type TransitionCommand struct {
	OrderID    uuid.UUID
	Transition Transition
	ActorID    uuid.UUID
	// Уже приведен к верхнему регистру.
	Code             string
	DeliveryDeadline *time.Time
	At               time.Time
}

type LocationUpdate struct {
	OrderID  uuid.UUID
	DriverID uuid.UUID
	Point    geo.Point
	At       time.Time
}
