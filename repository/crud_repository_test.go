package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cafestaff/entity"
	"cafestaff/testutil"

	"gorm.io/gorm"
)

func seedFoods(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		f := entity.Food{
			Name:        fmt.Sprintf("Food %02d", i),
			Stock:       i,
			Price:       100 - i,
			Image:       "x.jpg",
			Description: "tasty",
		}
		if i == 3 {
			f.Description = "Spicy Curry"
		}
		if err := db.Create(&f).Error; err != nil {
			t.Fatal(err)
		}
	}
}

func TestListQueryNormalize(t *testing.T) {
	cases := []struct {
		in          ListQuery
		def         int
		page, limit int
		wantSort    string
	}{
		{ListQuery{}, 20, 1, 20, "id"},
		{ListQuery{Page: -3, Limit: 1000}, 10, 1, 10, "id"},
		{ListQuery{Page: 4, Limit: 5, Sort: "name"}, 20, 4, 5, "name"},
		{ListQuery{}, 0, 1, DefaultLimit, "id"},
	}
	for _, tc := range cases {
		q := tc.in
		q.Normalize(tc.def)
		if q.Page != tc.page || q.Limit != tc.limit || q.Sort != tc.wantSort {
			t.Errorf("Normalize(%+v, %d) = %+v", tc.in, tc.def, q)
		}
	}
	q := ListQuery{Page: 3, Limit: 10}
	if q.Offset() != 20 {
		t.Errorf("Offset = %d", q.Offset())
	}
}

func TestCrudRepositoryList(t *testing.T) {
	db := testutil.OpenDB(t)
	seedFoods(t, db, 25)
	repo := NewCrudRepository[entity.Food](db)
	ctx := context.Background()

	q := ListQuery{Page: 2, Limit: 10}
	q.Normalize(20)
	items, total, err := repo.List(ctx, q)
	if err != nil {
		t.Fatal(err)
	}
	if total != 25 || len(items) != 10 {
		t.Fatalf("total=%d len=%d", total, len(items))
	}
	if items[0].Name != "Food 11" {
		t.Errorf("first item of page 2 = %q", items[0].Name)
	}

	q = ListQuery{Sort: "stock", Desc: true, Limit: 3}
	q.Normalize(20)
	items, _, err = repo.List(ctx, q)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Stock != 25 || items[2].Stock != 23 {
		t.Errorf("desc order wrong: %d..%d", items[0].Stock, items[2].Stock)
	}
}

func TestCrudRepositorySearch(t *testing.T) {
	db := testutil.OpenDB(t)
	seedFoods(t, db, 5)
	repo := NewCrudRepository[entity.Food](db)

	q := ListQuery{Search: "CURRY", SearchColumns: []string{"name", "description"}}
	q.Normalize(20)
	items, total, err := repo.List(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Food 03" {
		t.Fatalf("search got total=%d items=%+v", total, items)
	}
}

func TestCrudRepositoryCreateUpdateDelete(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewCrudRepository[entity.Drink](db, ChildRef{Table: "cafe_order", Column: "drink_id"})
	ctx := context.Background()

	d := &entity.Drink{Name: "Mocha", Price: 60, Size: "L", Image: "m.jpg", Description: "Chocolate"}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	d.Price = 0
	if err := repo.Update(ctx, d); err != nil {
		t.Fatal(err)
	}
	got, err := repo.FindByID(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 0 {
		t.Errorf("zero price was not written, got %d", got.Price)
	}

	order := entity.CafeOrder{DrinkID: &d.ID}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatal(err)
	}
	var reloaded entity.CafeOrder
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.DrinkID != nil {
		t.Errorf("drink_id = %v, want NULL", *reloaded.DrinkID)
	}

	if err := repo.Delete(ctx, d.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if _, err := repo.FindByID(ctx, d.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID after delete err = %v", err)
	}
}

func TestCrudRepositoryDuplicateKey(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewCrudRepository[entity.Food](db)
	ctx := context.Background()

	f := entity.Food{Name: "Scone", Stock: 1, Price: 1, Image: "s", Description: "d"}
	if err := repo.Create(ctx, &f); err != nil {
		t.Fatal(err)
	}
	dup := entity.Food{Name: "Scone", Stock: 1, Price: 1, Image: "s", Description: "d"}
	if err := repo.Create(ctx, &dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want ErrDuplicatedKey", err)
	}
}
