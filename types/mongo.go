package types

const (
	USER_ROLE_ADMIN    = "admin"
	USER_ROLE_EMPLOYEE = "employee"
)

const (
	TASK_STATUS_PENDING     = "pending"
	TASK_STATUS_IN_PROGRESS = "in-progress"
	TASK_STATUS_COMPLETED   = "completed"
)

// Assigner label recorded when a user creates a task for themselves.
// Completion notifications are suppressed for this label.
const TASK_ASSIGNER_SELF = "Self"

const (
	NOTIFICATION_TYPE_TASK_ASSIGNED  = "TASK_ASSIGNED"
	NOTIFICATION_TYPE_TASK_DEADLINE  = "TASK_DEADLINE"
	NOTIFICATION_TYPE_TASK_UPDATED   = "TASK_UPDATED"
	NOTIFICATION_TYPE_TASK_COMPLETED = "TASK_COMPLETED"
)

const (
	PROJECT_STATUS_ACTIVE    = "active"
	PROJECT_STATUS_ON_HOLD   = "on-hold"
	PROJECT_STATUS_COMPLETED = "completed"
)

type User struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Email      string `json:"email" bson:"email"`
	Password   string `json:"-" bson:"password"`
	FullName   string `json:"full_name" bson:"full_name"`
	Role       string `json:"role" bson:"role"`
	Department string `json:"department" bson:"department"`
	JobTitle   string `json:"job_title" bson:"job_title"`
	StartDate  string `json:"start_date" bson:"start_date"`
	Avatar     string `json:"avatar" bson:"avatar"`
	Phone      string `json:"phone" bson:"phone"`
	Address    string `json:"address" bson:"address"`
	Tasks      []Task `json:"tasks" bson:"tasks"`
	// TaskVersion guards the embedded task array: every write to Tasks
	// filters on the version it read and increments it, so two concurrent
	// read-modify-write cycles cannot silently clobber each other.
	TaskVersion int64 `json:"-" bson:"task_version"`
	CreateAt    int64 `json:"created_at" bson:"created_at"`
	UpdateAt    int64 `json:"updated_at" bson:"updated_at"`
}

// Task is embedded in its owning User document. Its ID is unique only
// within that user's task array.
type Task struct {
	ID       string `json:"id" bson:"id"`
	TaskName string `json:"task_name" bson:"task_name"`
	Project  string `json:"project" bson:"project"`
	// Assigner is a display-name label, not a user reference. "Self" marks
	// self-created tasks.
	Assigner  string `json:"assigner" bson:"assigner"`
	StartDate string `json:"start_date" bson:"start_date"`
	EndDate   string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Remark    string `json:"remark" bson:"remark"`
	Status    string `json:"status" bson:"status"`
	CreateAt  int64  `json:"created_at" bson:"created_at"`
	UpdateAt  int64  `json:"updated_at" bson:"updated_at"`
}

type Notification struct {
	ID         string               `json:"id" bson:"_id,omitempty"`
	Recipient  string               `json:"recipient" bson:"recipient"`
	Type       string               `json:"type" bson:"type"`
	Message    string               `json:"message" bson:"message"`
	Read       bool                 `json:"read" bson:"read"`
	TaskID     string               `json:"task_id,omitempty" bson:"task_id,omitempty"`
	EmployeeID string               `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	Metadata   NotificationMetadata `json:"metadata" bson:"metadata"`
	CreatedAt  int64                `json:"created_at" bson:"created_at"`
}

type NotificationMetadata struct {
	Assigner    string `json:"assigner,omitempty" bson:"assigner,omitempty"`
	Project     string `json:"project,omitempty" bson:"project,omitempty"`
	TaskName    string `json:"task_name,omitempty" bson:"task_name,omitempty"`
	DueDate     string `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CompletedBy string `json:"completed_by,omitempty" bson:"completed_by,omitempty"`
	CompletedAt int64  `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

type Department struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Lead        string `json:"lead" bson:"lead"`
	CreateAt    int64  `json:"created_at" bson:"created_at"`
	UpdateAt    int64  `json:"updated_at" bson:"updated_at"`
}

type Project struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Status      string `json:"status" bson:"status"`
	CreateAt    int64  `json:"created_at" bson:"created_at"`
	UpdateAt    int64  `json:"updated_at" bson:"updated_at"`
}

type Vendor struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	ContactName string `json:"contact_name" bson:"contact_name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Address     string `json:"address" bson:"address"`
	CreateAt    int64  `json:"created_at" bson:"created_at"`
	UpdateAt    int64  `json:"updated_at" bson:"updated_at"`
}
