package entity

import "time"

// CafeOrder links a customer to the food and/or drink they picked.
type CafeOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"userId"`
	User   *User `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty"`

	FoodID *uint `json:"foodId"`
	Food   *Food `gorm:"constraint:OnDelete:SET NULL" json:"food,omitempty"`

	DrinkID *uint  `json:"drinkId"`
	Drink   *Drink `gorm:"constraint:OnDelete:SET NULL" json:"drink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// preload only on the fulfillment screens
	Manages []Manage `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
}

func (CafeOrder) TableName() string { return "cafe_order" }

func (c CafeOrder) PrimaryKey() uint { return c.ID }
