package entity

import "time"

// Staff is an administrative user of the panel.
type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt hash
	Email     string    `gorm:"size:50;not null" json:"email"`
	Login     string    `gorm:"size:100;not null;uniqueIndex" json:"login"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Manages []Manage `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Staff) TableName() string { return "staff" }

func (s Staff) String() string { return s.Name }

func (s Staff) PrimaryKey() uint { return s.ID }
