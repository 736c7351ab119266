package repository

import (
	"context"
	"testing"

	"cafestaff/entity"
	"cafestaff/testutil"
)

func TestOrderRepositoryDeleteDetachesManages(t *testing.T) {
	db := testutil.OpenDB(t)
	staff := testutil.CreateStaff(t, db, "Alex", "alex", "pw")
	order := testutil.CreateOrder(t, db, "Sam")
	m := entity.Manage{OrderID: &order.ID, StaffID: &staff.ID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}

	repo := NewOrderRepository(db)
	ctx := context.Background()

	manages, err := repo.ManagesOfTx(db.WithContext(ctx), order.ID)
	if err != nil || len(manages) != 1 {
		t.Fatalf("ManagesOf = %v, %v", manages, err)
	}
	if ok, _ := repo.Exists(ctx, order.ID); !ok {
		t.Fatal("order should exist")
	}

	if err := repo.Delete(ctx, order.ID); err != nil {
		t.Fatal(err)
	}
	if ok, _ := repo.Exists(ctx, order.ID); ok {
		t.Fatal("order should be gone")
	}

	var reloaded entity.Manage
	if err := db.First(&reloaded, m.ID).Error; err != nil {
		t.Fatalf("manage row must survive: %v", err)
	}
	if reloaded.OrderID != nil {
		t.Errorf("order_id = %d, want NULL", *reloaded.OrderID)
	}
	if reloaded.StaffID == nil || *reloaded.StaffID != staff.ID {
		t.Errorf("staff_id changed: %v", reloaded.StaffID)
	}
}

func TestStaffRepository(t *testing.T) {
	db := testutil.OpenDB(t)
	s := testutil.CreateStaff(t, db, "Alex", "alex", "pw")
	repo := NewStaffRepository(db)
	ctx := context.Background()

	got, err := repo.FindByLogin(ctx, "alex")
	if err != nil || got.ID != s.ID {
		t.Fatalf("FindByLogin = %v, %v", got, err)
	}
	if _, err := repo.FindByLogin(ctx, "ALEX"); err == nil {
		t.Error("login lookup must be exact")
	}
	if n, _ := repo.CountByName(ctx, "Alex"); n != 1 {
		t.Errorf("CountByName = %d", n)
	}
	if n, _ := repo.CountByLogin(ctx, "alex"); n != 1 {
		t.Errorf("CountByLogin = %d", n)
	}
	if _, err := repo.FindByID(ctx, s.ID+1); err == nil {
		t.Error("FindByID on a missing id returned no error")
	}
}

func TestAuditRepositoryRecord(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()
	for _, a := range []string{entity.AuditLogin, entity.AuditCreate, entity.AuditLogout} {
		if err := repo.Record(ctx, &entity.AuditEntry{Action: a, Login: "alex"}); err != nil {
			t.Fatal(err)
		}
	}
	var items []entity.AuditEntry
	if err := db.Order("id").Find(&items).Error; err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 || items[2].Action != entity.AuditLogout || items[0].ID == 0 {
		t.Fatalf("stored entries = %+v", items)
	}
}
