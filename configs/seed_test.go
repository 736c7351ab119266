package configs

import (
	"context"
	"testing"
	"time"

	"cafestaff/entity"
	"cafestaff/repository"
	"cafestaff/services"
	"cafestaff/testutil"

	"go.uber.org/zap"
)

func TestSeedStaffIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	auth := services.NewAuthService(repository.NewStaffRepository(db), "k", time.Hour, zap.NewNop())
	seed := SeedConfig{StaffName: "Admin", StaffLogin: "admin", StaffEmail: "admin@cafe.test", StaffPassword: "pw"}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := SeedStaff(ctx, auth, seed, zap.NewNop()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	var n int64
	db.Model(&entity.Staff{}).Count(&n)
	if n != 1 {
		t.Fatalf("staff rows = %d", n)
	}
	if _, err := auth.Authenticate(ctx, "admin", "pw"); err != nil {
		t.Errorf("seeded staff cannot log in: %v", err)
	}

	if err := SeedStaff(ctx, auth, SeedConfig{}, zap.NewNop()); err != nil {
		t.Errorf("empty seed: %v", err)
	}
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	for i := 0; i < 2; i++ {
		if err := SeedDemo(db, zap.NewNop()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	var foods, orders int64
	db.Model(&entity.Food{}).Count(&foods)
	db.Model(&entity.CafeOrder{}).Count(&orders)
	if foods != 2 || orders != 1 {
		t.Errorf("foods=%d orders=%d", foods, orders)
	}
}
