package entity

import "time"

// Manage is a fulfillment record: which staff member handles an order and
// whether it is done.
type Manage struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IsDone bool `gorm:"column:isdone;not null;default:false" json:"isDone"`

	OrderID *uint      `gorm:"column:order_id" json:"orderId"`
	Order   *CafeOrder `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"order,omitempty"`

	StaffID *uint  `gorm:"column:staff_id" json:"staffId"`
	Staff   *Staff `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL" json:"staff,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Manage) TableName() string { return "manage" }

func (m Manage) PrimaryKey() uint { return m.ID }
