package service

import (
	"context"
	"errors"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/utils"
)

type UserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.User, string, error)
	CreateEmployee(ctx context.Context, req *types.CreateEmployeeRequest) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	UpdateProfile(ctx context.Context, id string, req *types.UpdateProfileRequest) (*types.User, error)
	PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error)
	GetUserByDepartment(ctx context.Context, department string) ([]*types.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return nil, types.ErrInvalidRequest
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().Unix()
	user := &types.User{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
		Role:     types.USER_ROLE_EMPLOYEE,
		Tasks:    []types.Task{},
		CreateAt: now,
		UpdateAt: now,
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, "", types.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, "", types.ErrInvalidCredentials
	}
	token, err := utils.GenerateUserToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) CreateEmployee(ctx context.Context, req *types.CreateEmployeeRequest) (*types.User, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return nil, types.ErrInvalidRequest
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().Unix()
	user := &types.User{
		Email:      req.Email,
		Password:   hashed,
		FullName:   req.FullName,
		Role:       types.USER_ROLE_EMPLOYEE,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		StartDate:  req.StartDate,
		Phone:      req.Phone,
		Address:    req.Address,
		Tasks:      []types.Task{},
		CreateAt:   now,
		UpdateAt:   now,
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req *types.UpdateProfileRequest) (*types.User, error) {
	dbUser, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FullName != "" {
		dbUser.FullName = req.FullName
	}
	if req.Department != "" {
		dbUser.Department = req.Department
	}
	if req.JobTitle != "" {
		dbUser.JobTitle = req.JobTitle
	}
	if req.StartDate != "" {
		dbUser.StartDate = req.StartDate
	}
	if req.Avatar != "" {
		dbUser.Avatar = req.Avatar
	}
	if req.Phone != "" {
		dbUser.Phone = req.Phone
	}
	if req.Address != "" {
		dbUser.Address = req.Address
	}
	if err := s.repo.UpdateUser(ctx, id, dbUser); err != nil {
		return nil, err
	}
	return dbUser, nil
}

func (s *userService) PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	return s.repo.PaginateUser(ctx, page, limit)
}

func (s *userService) GetUserByDepartment(ctx context.Context, department string) ([]*types.User, error) {
	return s.repo.GetUserByDepartment(ctx, department)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}
