package services

import (
	"context"
	"time"

	"cafestaff/entity"
	"cafestaff/repository"

	"gorm.io/gorm"
)

// OrderService is the store behind the Cafe Order screen. Deleting an order
// detaches its fulfillment records and tells the dashboards about it.
type OrderService struct {
	*repository.OrderRepository

	publisher EventPublisher
}

func NewOrderService(orders *repository.OrderRepository, pub EventPublisher) *OrderService {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &OrderService{OrderRepository: orders, publisher: pub}
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	// the records announced are the ones detached by the same transaction
	var manages []entity.Manage
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if manages, err = s.ManagesOfTx(tx, id); err != nil {
			return err
		}
		return s.DeleteTx(tx, id)
	})
	if err != nil {
		return notFound(err)
	}

	now := time.Now().UTC()
	orderID := id
	if len(manages) == 0 {
		s.publisher.Publish(FulfillmentEvent{Type: EventOrderDeleted, OrderID: &orderID, At: now})
		return nil
	}
	for _, m := range manages {
		s.publisher.Publish(FulfillmentEvent{
			Type:     EventOrderDeleted,
			ManageID: m.ID,
			OrderID:  &orderID,
			StaffID:  m.StaffID,
			IsDone:   m.IsDone,
			At:       now,
		})
	}
	return nil
}
