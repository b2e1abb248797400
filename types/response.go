package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

type TaskResponse struct {
	Message string `json:"message"`
	Task    *Task  `json:"task"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type NotificationResponse struct {
	Message      string        `json:"message"`
	Notification *Notification `json:"notification"`
}

type NotificationListResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int64           `json:"unreadCount"`
}

type PaginateResponse struct {
	Total    int64       `json:"total"`
	Elements interface{} `json:"elements"`
	Page     int64       `json:"page"`
	Limit    int64       `json:"limit"`
}

type AdminDashboardResponse struct {
	Employees     int64            `json:"employees"`
	Departments   int64            `json:"departments"`
	Projects      int64            `json:"projects"`
	Vendors       int64            `json:"vendors"`
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
}

type EmployeeDashboardResponse struct {
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
	UnreadCount   int64            `json:"unread_count"`
}
