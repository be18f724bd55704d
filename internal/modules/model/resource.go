package model

import (
	"time"

	"github.com/google/uuid"
)

// Resource is a file shared within a project. FileURL holds the bucket
// object key; download URLs are presigned per request.
type Resource struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FileURL  string    `gorm:"type:text;not null" json:"file_url"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	IsPublic bool      `gorm:"not null;index" json:"is_public"`

	UploadedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"uploaded_by"`
	UploadedBy   *User     `gorm:"foreignKey:UploadedByID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	UploadedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"uploaded_at"`
}

func (Resource) TableName() string { return "resources" }
