package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafestaff/entity"
	"cafestaff/repository"

	"gorm.io/gorm"
)

// FulfillmentService is the store behind the Manage screen. It checks that
// the referenced order and staff exist and announces every change.
type FulfillmentService struct {
	*repository.CrudRepository[entity.Manage]

	orders    *repository.OrderRepository
	staff     *repository.StaffRepository
	publisher EventPublisher
}

func NewFulfillmentService(db *gorm.DB, orders *repository.OrderRepository, staff *repository.StaffRepository, pub EventPublisher) *FulfillmentService {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &FulfillmentService{
		CrudRepository: repository.NewCrudRepository[entity.Manage](db),
		orders:         orders,
		staff:          staff,
		publisher:      pub,
	}
}

func (s *FulfillmentService) Create(ctx context.Context, m *entity.Manage) error {
	if err := s.checkRefs(ctx, m); err != nil {
		return err
	}
	if err := s.CrudRepository.Create(ctx, m); err != nil {
		return fmt.Errorf("create manage: %w", err)
	}
	s.publish(EventManageCreated, m)
	return nil
}

func (s *FulfillmentService) Update(ctx context.Context, m *entity.Manage) error {
	if err := s.checkRefs(ctx, m); err != nil {
		return err
	}
	if err := s.CrudRepository.Update(ctx, m); err != nil {
		return fmt.Errorf("update manage: %w", err)
	}
	s.publish(EventManageUpdated, m)
	return nil
}

func (s *FulfillmentService) checkRefs(ctx context.Context, m *entity.Manage) error {
	if m.OrderID != nil {
		ok, err := s.orders.Exists(ctx, *m.OrderID)
		if err != nil {
			return err
		}
		if !ok {
			return &FieldError{Field: "order_id", Message: "Not a valid choice", Err: ErrUnknownOrder}
		}
	}
	if m.StaffID != nil {
		if _, err := s.staff.FindByID(ctx, *m.StaffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &FieldError{Field: "staff_id", Message: "Not a valid choice", Err: ErrUnknownStaff}
			}
			return err
		}
	}
	return nil
}

func (s *FulfillmentService) publish(typ string, m *entity.Manage) {
	s.publisher.Publish(FulfillmentEvent{
		Type:     typ,
		ManageID: m.ID,
		OrderID:  m.OrderID,
		StaffID:  m.StaffID,
		IsDone:   m.IsDone,
		At:       time.Now().UTC(),
	})
}
