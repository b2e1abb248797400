package service

import (
	"context"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

type DashboardService interface {
	AdminSummary(ctx context.Context) (*types.AdminDashboardResponse, error)
	EmployeeSummary(ctx context.Context, userID string) (*types.EmployeeDashboardResponse, error)
}

type dashboardService struct {
	userRepo         repository.UserRepo
	departmentRepo   repository.DepartmentRepo
	projectRepo      repository.ProjectRepo
	vendorRepo       repository.VendorRepo
	notificationRepo repository.NotificationRepo
}

func NewDashboardService(
	userRepo repository.UserRepo,
	departmentRepo repository.DepartmentRepo,
	projectRepo repository.ProjectRepo,
	vendorRepo repository.VendorRepo,
	notificationRepo repository.NotificationRepo,
) DashboardService {
	return &dashboardService{
		userRepo:         userRepo,
		departmentRepo:   departmentRepo,
		projectRepo:      projectRepo,
		vendorRepo:       vendorRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *dashboardService) AdminSummary(ctx context.Context) (*types.AdminDashboardResponse, error) {
	employees, err := s.userRepo.CountByRole(ctx, types.USER_ROLE_EMPLOYEE)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	tasksByStatus, err := s.userRepo.CountTasksByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &types.AdminDashboardResponse{
		Employees:     employees,
		Departments:   departments,
		Projects:      projects,
		Vendors:       vendors,
		TasksByStatus: tasksByStatus,
	}, nil
}

func (s *dashboardService) EmployeeSummary(ctx context.Context, userID string) (*types.EmployeeDashboardResponse, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasksByStatus := make(map[string]int64)
	for _, task := range user.Tasks {
		tasksByStatus[task.Status]++
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.EmployeeDashboardResponse{
		TasksByStatus: tasksByStatus,
		UnreadCount:   unread,
	}, nil
}
