package repository

import (
	"context"

	"cafestaff/entity"

	"gorm.io/gorm"
)

// StaffRepository talks to the staff table only.
type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

// find a staff member by login, exact match
func (r *StaffRepository) FindByLogin(ctx context.Context, login string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.WithContext(ctx).Where("login = ?", login).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) CountByLogin(ctx context.Context, login string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Staff{}).Where("login = ?", login).Count(&n).Error
	return n, err
}

func (r *StaffRepository) CountByName(ctx context.Context, name string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Staff{}).Where("name = ?", name).Count(&n).Error
	return n, err
}

func (r *StaffRepository) Create(ctx context.Context, s *entity.Staff) error {
	return r.DB.WithContext(ctx).Create(s).Error
}
