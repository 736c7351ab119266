package entity

import "time"

type Drink struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Price       int       `gorm:"not null" json:"price"`
	Size        string    `gorm:"size:50;not null" json:"size"`
	Image       string    `gorm:"size:300;not null" json:"image"`
	Description string    `gorm:"size:300;not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Orders []CafeOrder `gorm:"foreignKey:DrinkID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Drink) TableName() string { return "drink" }

func (d Drink) String() string { return d.Name }

func (d Drink) PrimaryKey() uint { return d.ID }
