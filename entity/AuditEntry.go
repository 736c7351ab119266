package entity

import "time"

const (
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditLogout      = "logout"
	AuditCreate      = "create"
	AuditUpdate      = "update"
	AuditDelete      = "delete"
)

// AuditEntry records one staff action taken through the panel.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id" bson:"-"`
	StaffID    *uint     `gorm:"index" json:"staffId" bson:"staff_id,omitempty"`
	Login      string    `gorm:"size:100" json:"login" bson:"login"`
	Action     string    `gorm:"size:32;not null;index" json:"action" bson:"action"`
	Resource   string    `gorm:"size:64" json:"resource" bson:"resource,omitempty"`
	RecordID   *uint     `json:"recordId" bson:"record_id,omitempty"`
	Detail     string    `gorm:"size:300" json:"detail" bson:"detail,omitempty"`
	RemoteAddr string    `gorm:"size:64" json:"remoteAddr" bson:"remote_addr,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt" bson:"created_at"`
}

func (AuditEntry) TableName() string { return "audit_log" }

func (e AuditEntry) PrimaryKey() uint { return e.ID }
