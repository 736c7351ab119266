package services

import (
	"context"

	"cafestaff/entity"
	"cafestaff/repository"

	"gorm.io/gorm"
)

type DashboardStats struct {
	Orders          int64 `json:"orders"`
	OpenFulfillment int64 `json:"openFulfillment"`
	DoneFulfillment int64 `json:"doneFulfillment"`
	Foods           int64 `json:"foods"`
	Drinks          int64 `json:"drinks"`
	Customers       int64 `json:"customers"`
	Staff           int64 `json:"staff"`
}

// DashboardService computes the counters shown on the admin index.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var st DashboardStats
	counts := []struct {
		model  any
		scopes []func(*gorm.DB) *gorm.DB
		dst    *int64
	}{
		{&entity.CafeOrder{}, nil, &st.Orders},
		{&entity.Manage{}, []func(*gorm.DB) *gorm.DB{repository.IsDone(false)}, &st.OpenFulfillment},
		{&entity.Manage{}, []func(*gorm.DB) *gorm.DB{repository.IsDone(true)}, &st.DoneFulfillment},
		{&entity.Food{}, nil, &st.Foods},
		{&entity.Drink{}, nil, &st.Drinks},
		{&entity.User{}, nil, &st.Customers},
		{&entity.Staff{}, nil, &st.Staff},
	}
	for _, q := range counts {
		if err := s.DB.WithContext(ctx).Model(q.model).Scopes(q.scopes...).Count(q.dst).Error; err != nil {
			return st, err
		}
	}
	return st, nil
}
