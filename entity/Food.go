package entity

import "time"

type Food struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Stock       int       `gorm:"not null" json:"stock"`
	Price       int       `gorm:"not null" json:"price"`
	Image       string    `gorm:"size:300;not null" json:"image"`
	Description string    `gorm:"size:300;not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Orders []CafeOrder `gorm:"foreignKey:FoodID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Food) TableName() string { return "food" }

func (f Food) String() string { return f.Name }

func (f Food) PrimaryKey() uint { return f.ID }
