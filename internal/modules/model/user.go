package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FirstName    string    `gorm:"type:text" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	IsStaff      bool      `gorm:"not null;default:false" json:"is_staff"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"joined_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"-"`

	// User <-> Project (created)
	CreatedProjects []Project `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// User <-> Task (assigned)
	AssignedTasks []Task `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// User <-> Resource (uploaded)
	UploadedResources []Resource `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// User <-> Message (sent)
	SentMessages []Message `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// User <-> Notification
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// User <-> Schedule
	Schedules []Schedule `gorm:"foreignKey:ScheduledByID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }
