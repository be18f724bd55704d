package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType = string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationUpdate   NotificationType = "update"
	NotificationMention  NotificationType = "mention"
	NotificationMessage  NotificationType = "message"
)

type Notification struct {
	ID      uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content string           `gorm:"type:text;not null" json:"content"`
	Type    NotificationType `gorm:"type:text;not null;check:type IN ('reminder','update','mention','message');index" json:"type"`
	IsRead  bool             `gorm:"not null" json:"is_read"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	User   *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
