package serializer

import (
	"time"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/modules/model"
)

// Read projections. Write payloads bind into the handler input structs; these
// are the only shapes that leave the API, so server-managed fields (password
// hashes, ownership columns) cannot leak or be spoofed through them.

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	JoinedAt  time.Time `json:"joined_at"`
}

func NewUserView(u *model.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		JoinedAt:  u.CreatedAt,
	}
}

func NewUserViews(users []model.User) []UserView {
	out := make([]UserView, 0, len(users))
	for i := range users {
		out = append(out, NewUserView(&users[i]))
	}
	return out
}

type ProjectView struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	IsPublic    bool        `json:"is_public"`
	CreatedBy   uuid.UUID   `json:"created_by"`
	Members     []uuid.UUID `json:"members"`
	CreatedAt   time.Time   `json:"created_at"`
}

func NewProjectView(p *model.Project) ProjectView {
	members := make([]uuid.UUID, 0, len(p.Members))
	for i := range p.Members {
		members = append(members, p.Members[i].ID)
	}
	return ProjectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		IsPublic:    p.IsPublic,
		CreatedBy:   p.CreatedByID,
		Members:     members,
		CreatedAt:   p.CreatedAt,
	}
}

func NewProjectViews(projects []model.Project) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectView(&projects[i]))
	}
	return out
}

type TaskView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     string    `json:"due_date"`
	IsPublic    bool      `json:"is_public"`
	AssignedTo  uuid.UUID `json:"assigned_to"`
	ProjectID   uuid.UUID `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTaskView(t *model.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     time.Time(t.DueDate).Format("2006-01-02"),
		IsPublic:    t.IsPublic,
		AssignedTo:  t.AssignedToID,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTaskViews(tasks []model.Task) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskView(&tasks[i]))
	}
	return out
}

type ResourceView struct {
	ID         uuid.UUID `json:"id"`
	FileURL    string    `json:"file_url"`
	Title      string    `json:"title"`
	IsPublic   bool      `json:"is_public"`
	UploadedBy uuid.UUID `json:"uploaded_by"`
	ProjectID  uuid.UUID `json:"project_id"`
	UploadedAt time.Time `json:"uploaded_at"`

	// DownloadURL is a presigned GET link, populated on reads only.
	DownloadURL string `json:"download_url,omitempty"`
}

func NewResourceView(r *model.Resource, downloadURL string) ResourceView {
	return ResourceView{
		ID:          r.ID,
		FileURL:     r.FileURL,
		Title:       r.Title,
		IsPublic:    r.IsPublic,
		UploadedBy:  r.UploadedByID,
		ProjectID:   r.ProjectID,
		UploadedAt:  r.UploadedAt,
		DownloadURL: downloadURL,
	}
}

type MessageView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    uuid.UUID `json:"sender"`
	ProjectID uuid.UUID `json:"project_id"`
	SentAt    time.Time `json:"sent_at"`
}

func NewMessageView(m *model.Message) MessageView {
	return MessageView{
		ID:        m.ID,
		Content:   m.Content,
		Sender:    m.SenderID,
		ProjectID: m.ProjectID,
		SentAt:    m.SentAt,
	}
}

func NewMessageViews(messages []model.Message) []MessageView {
	out := make([]MessageView, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageView(&messages[i]))
	}
	return out
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	User      uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationView(n *model.Notification) NotificationView {
	return NotificationView{
		ID:        n.ID,
		Content:   n.Content,
		Type:      n.Type,
		IsRead:    n.IsRead,
		User:      n.UserID,
		CreatedAt: n.CreatedAt,
	}
}

func NewNotificationViews(notifications []model.Notification) []NotificationView {
	out := make([]NotificationView, 0, len(notifications))
	for i := range notifications {
		out = append(out, NewNotificationView(&notifications[i]))
	}
	return out
}

type ScheduleView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsTeamEvent bool      `json:"is_team_event"`
	ScheduledBy uuid.UUID `json:"scheduled_by"`
	ProjectID   uuid.UUID `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewScheduleView(s *model.Schedule) ScheduleView {
	return ScheduleView{
		ID:          s.ID,
		Title:       s.Title,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsTeamEvent: s.IsTeamEvent,
		ScheduledBy: s.ScheduledByID,
		ProjectID:   s.ProjectID,
		CreatedAt:   s.CreatedAt,
	}
}

func NewScheduleViews(schedules []model.Schedule) []ScheduleView {
	out := make([]ScheduleView, 0, len(schedules))
	for i := range schedules {
		out = append(out, NewScheduleView(&schedules[i]))
	}
	return out
}
