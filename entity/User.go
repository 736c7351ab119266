package entity

import "time"

// User is a cafe customer.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"firstName"`
	LastName  string    `gorm:"size:50;not null" json:"lastName"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Email     string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Orders []CafeOrder `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string { return "user" }

func (u User) String() string { return u.FirstName }

func (u User) PrimaryKey() uint { return u.ID }
