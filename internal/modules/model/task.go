package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaskPriority = string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task status values. Transitions are deliberately unrestricted: any status
// may follow any other.
type TaskStatus = string

const (
	StatusToDo       TaskStatus = "to_do"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type Task struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Priority    TaskPriority   `gorm:"type:text;not null;check:priority IN ('low','medium','high')" json:"priority"`
	Status      TaskStatus     `gorm:"type:text;not null;default:'to_do';check:status IN ('to_do','in_progress','done')" json:"status"`
	DueDate     datatypes.Date `gorm:"not null;index" json:"due_date"`
	IsPublic    bool           `gorm:"not null" json:"is_public"`

	AssignedToID uuid.UUID `gorm:"type:uuid;not null;index" json:"assigned_to"`
	AssignedTo   *User     `gorm:"foreignKey:AssignedToID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
