package controllers

import (
	"cafestaff/entity"
)

type FoodForm struct {
	Name        string `form:"name" json:"name" binding:"required,max=50"`
	Stock       *int   `form:"stock" json:"stock" binding:"required,min=0"`
	Price       *int   `form:"price" json:"price" binding:"required,min=0"`
	Image       string `form:"image" json:"image" binding:"required,max=300"`
	Description string `form:"description" json:"description" binding:"required,max=300"`
}

func NewFoodForm() Form[entity.Food] { return &FoodForm{} }

func FoodFormFrom(f *entity.Food) Form[entity.Food] {
	stock, price := f.Stock, f.Price
	return &FoodForm{Name: f.Name, Stock: &stock, Price: &price, Image: f.Image, Description: f.Description}
}

func (f *FoodForm) Apply(item *entity.Food) {
	item.Name = f.Name
	item.Stock = deref(f.Stock)
	item.Price = deref(f.Price)
	item.Image = f.Image
	item.Description = f.Description
}

type DrinkForm struct {
	Name        string `form:"name" json:"name" binding:"required,max=50"`
	Price       *int   `form:"price" json:"price" binding:"required,min=0"`
	Size        string `form:"size" json:"size" binding:"required,max=50"`
	Image       string `form:"image" json:"image" binding:"required,max=300"`
	Description string `form:"description" json:"description" binding:"required,max=300"`
}

func NewDrinkForm() Form[entity.Drink] { return &DrinkForm{} }

func DrinkFormFrom(d *entity.Drink) Form[entity.Drink] {
	price := d.Price
	return &DrinkForm{Name: d.Name, Price: &price, Size: d.Size, Image: d.Image, Description: d.Description}
}

func (f *DrinkForm) Apply(item *entity.Drink) {
	item.Name = f.Name
	item.Price = deref(f.Price)
	item.Size = f.Size
	item.Image = f.Image
	item.Description = f.Description
}

// ManageForm edits a fulfillment record; is_done is the completion flag.
type ManageForm struct {
	OrderID uint `form:"order_id" json:"order_id" binding:"required"`
	StaffID uint `form:"staff_id" json:"staff_id" binding:"required"`
	IsDone  bool `form:"is_done" json:"is_done"`
}

func NewManageForm() Form[entity.Manage] { return &ManageForm{} }

func ManageFormFrom(m *entity.Manage) Form[entity.Manage] {
	return &ManageForm{OrderID: deref(m.OrderID), StaffID: deref(m.StaffID), IsDone: m.IsDone}
}

func (f *ManageForm) Apply(item *entity.Manage) {
	orderID, staffID := f.OrderID, f.StaffID
	item.OrderID = &orderID
	item.StaffID = &staffID
	item.IsDone = f.IsDone
	// stale preloads would be written back by Save
	item.Order = nil
	item.Staff = nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
