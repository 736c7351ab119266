// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"testing"

	"cafestaff/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory sqlite database that lives as long as t.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(entity.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateStaff inserts a staff member whose password is hashed at the
// minimum bcrypt cost.
func CreateStaff(t testing.TB, db *gorm.DB, name, login, password string) *entity.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	s := &entity.Staff{Name: name, Login: login, Email: login + "@cafe.test", Password: string(hash)}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return s
}

// CreateOrder inserts a customer, a food, a drink and an order tying them together.
func CreateOrder(t testing.TB, db *gorm.DB, customer string) *entity.CafeOrder {
	t.Helper()
	u := &entity.User{FirstName: customer, LastName: "Test", Password: "x", Email: customer + "@campus.test"}
	f := &entity.Food{Name: "Muffin " + customer, Stock: 5, Price: 30, Image: "muffin.jpg", Description: "Blueberry"}
	d := &entity.Drink{Name: "Tea", Price: 20, Size: "S", Image: "tea.jpg", Description: "Green tea"}
	for _, v := range []any{u, f, d} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("create fixture: %v", err)
		}
	}
	o := &entity.CafeOrder{UserID: &u.ID, FoodID: &f.ID, DrinkID: &d.ID}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}
