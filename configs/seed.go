package configs

import (
	"context"
	"errors"

	"cafestaff/entity"
	"cafestaff/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedStaff creates the first staff account from STAFF_* variables.
func SeedStaff(ctx context.Context, auth *services.AuthService, seed SeedConfig, log *zap.Logger) error {
	if seed.StaffLogin == "" || seed.StaffPassword == "" {
		log.Info("skip seeding staff: STAFF_LOGIN/STAFF_PASSWORD not set")
		return nil
	}

	staff, err := auth.Register(ctx, services.RegisterInput{
		Name:     seed.StaffName,
		Login:    seed.StaffLogin,
		Email:    seed.StaffEmail,
		Password: seed.StaffPassword,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateLogin):
		log.Info("staff already exists", zap.String("login", seed.StaffLogin))
		return nil
	case err != nil:
		return err
	}
	log.Info("seeded staff", zap.String("login", staff.Login), zap.Uint("id", staff.ID))
	return nil
}

// SeedDemo fills a small catalog, one customer and one pending order.
func SeedDemo(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		croissant := entity.Food{Name: "Croissant"}
		if err := tx.Where(entity.Food{Name: croissant.Name}).Attrs(entity.Food{
			Stock: 24, Price: 35, Image: "/static/img/croissant.jpg", Description: "Butter croissant",
		}).FirstOrCreate(&croissant).Error; err != nil {
			return err
		}
		bagel := entity.Food{Name: "Bagel"}
		if err := tx.Where(entity.Food{Name: bagel.Name}).Attrs(entity.Food{
			Stock: 12, Price: 40, Image: "/static/img/bagel.jpg", Description: "Sesame bagel with cream cheese",
		}).FirstOrCreate(&bagel).Error; err != nil {
			return err
		}

		latte := entity.Drink{Name: "Latte", Size: "M"}
		if err := tx.Where(entity.Drink{Name: latte.Name, Size: latte.Size}).Attrs(entity.Drink{
			Price: 55, Image: "/static/img/latte.jpg", Description: "Espresso with steamed milk",
		}).FirstOrCreate(&latte).Error; err != nil {
			return err
		}

		hash, err := services.HashPassword("customer")
		if err != nil {
			return err
		}
		customer := entity.User{Email: "student@campus.test"}
		if err := tx.Where(entity.User{Email: customer.Email}).Attrs(entity.User{
			FirstName: "Sam", LastName: "Student", Password: hash,
		}).FirstOrCreate(&customer).Error; err != nil {
			return err
		}

		var orders int64
		if err := tx.Model(&entity.CafeOrder{}).Where("user_id = ?", customer.ID).Count(&orders).Error; err != nil {
			return err
		}
		if orders == 0 {
			order := entity.CafeOrder{UserID: &customer.ID, FoodID: &croissant.ID, DrinkID: &latte.ID}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		}

		log.Info("demo data seeded")
		return nil
	})
}
