package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content string    `gorm:"type:text;not null" json:"content"`

	SenderID uuid.UUID `gorm:"type:uuid;not null;index" json:"sender"`
	Sender   *User     `gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	SentAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"sent_at"`
}

func (Message) TableName() string { return "messages" }
