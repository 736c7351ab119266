package services

import (
	"time"
)

const (
	EventManageCreated = "manage.created"
	EventManageUpdated = "manage.updated"
	EventOrderDeleted  = "order.deleted"
)

// FulfillmentEvent is pushed to staff dashboards when fulfillment state changes.
type FulfillmentEvent struct {
	Type     string    `json:"type"`
	ManageID uint      `json:"manageId,omitempty"`
	OrderID  *uint     `json:"orderId"`
	StaffID  *uint     `json:"staffId"`
	IsDone   bool      `json:"isDone"`
	At       time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(FulfillmentEvent)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(FulfillmentEvent) {}
