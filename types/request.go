package types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateEmployeeRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
	StartDate  string `json:"start_date"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// UpdateProfileRequest carries only mutable profile fields. Empty fields
// keep their prior values.
type UpdateProfileRequest struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
	StartDate  string `json:"start_date"`
	Avatar     string `json:"avatar"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type AddTaskRequest struct {
	TaskName  string `json:"task_name"`
	Project   string `json:"project"`
	Assigner  string `json:"assigner"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Remark    string `json:"remark"`
	Status    string `json:"status"`
}

// UpdateTaskRequest is a partial update. An empty string leaves the prior
// value in place for every field except Remark, which is a pointer so a
// present-but-empty remark is an explicit overwrite.
type UpdateTaskRequest struct {
	TaskName  string  `json:"task_name"`
	Project   string  `json:"project"`
	Assigner  string  `json:"assigner"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Remark    *string `json:"remark"`
	Status    string  `json:"status"`
}

type CreateAssignmentNotificationRequest struct {
	RecipientID string `json:"recipient_id"`
	TaskName    string `json:"task_name"`
	Assigner    string `json:"assigner"`
	Project     string `json:"project"`
	DueDate     string `json:"due_date"`
	TaskID      string `json:"task_id"`
}

type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Lead        string `json:"lead"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type VendorRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}
